package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/grooveshop/storefront/pkg/types"
)

type demoAlbum struct {
	artist string
	title  string
	genre  string
}

var demoAlbums = []demoAlbum{
	{"The Beatles", "Abbey Road", "Rock"},
	{"Pink Floyd", "Dark Side of the Moon", "Rock"},
	{"Led Zeppelin", "Led Zeppelin IV", "Rock"},
	{"Fleetwood Mac", "Rumours", "Rock"},
	{"Michael Jackson", "Thriller", "Pop"},
	{"Eagles", "Hotel California", "Rock"},
	{"AC/DC", "Back in Black", "Metal"},
	{"Nirvana", "Nevermind", "Rock"},
	{"Radiohead", "OK Computer", "Indie"},
	{"Prince", "Purple Rain", "Funk/Soul"},
	{"David Bowie", "The Rise and Fall of Ziggy Stardust", "Rock"},
	{"Bob Dylan", "Highway 61 Revisited", "Folk"},
	{"Miles Davis", "Kind of Blue", "Jazz"},
	{"John Coltrane", "A Love Supreme", "Jazz"},
	{"Aretha Franklin", "I Never Loved a Man", "Funk/Soul"},
	{"Stevie Wonder", "Songs in the Key of Life", "Funk/Soul"},
	{"The Rolling Stones", "Exile on Main St.", "Rock"},
	{"The Clash", "London Calling", "Punk/Ska"},
	{"Talking Heads", "Remain in Light", "Rock"},
	{"Public Enemy", "It Takes a Nation of Millions", "Rap/Hip-Hop"},
	{"A Tribe Called Quest", "The Low End Theory", "Rap/Hip-Hop"},
	{"Nina Simone", "I Put a Spell on You", "Jazz"},
}

var demoConditions = []types.Condition{
	types.ConditionNearMint,
	types.ConditionVeryGoodPlus,
	types.ConditionVeryGood,
	types.ConditionGoodPlus,
	types.ConditionGood,
}

var demoFormats = []string{"LP", "LP", "LP", "7\"", "CD", "Cassette"}

var demoLabels = []string{
	"Atlantic Records", "Columbia Records", "Capitol Records",
	"Motown", "Stax Records", "Blue Note", "Verve", "Impulse!",
	"Sub Pop", "Rough Trade",
}

// demoProducts builds a deterministic sample catalog so a fresh
// instance has something to browse before the broker delivers the real
// one.
func demoProducts(count int) []types.Product {
	rng := rand.New(rand.NewSource(1973))
	products := make([]types.Product, 0, count)
	for i := 1; i <= count; i++ {
		album := demoAlbums[rng.Intn(len(demoAlbums))]
		condition := demoConditions[rng.Intn(len(demoConditions))]
		format := demoFormats[rng.Intn(len(demoFormats))]
		label := demoLabels[rng.Intn(len(demoLabels))]
		price := float64(rng.Intn(6000)+1500) / 100

		year := 1960 + rng.Intn(60)
		release := time.Date(year, time.Month(rng.Intn(12)+1), rng.Intn(28)+1, 0, 0, 0, 0, time.UTC)

		p := types.Product{
			Id:          fmt.Sprintf("demo-%d", i),
			Title:       album.title,
			Artist:      album.artist,
			Format:      format,
			Genre:       album.genre,
			Condition:   condition,
			Price:       price,
			Tags:        []string{album.genre + " Vinyl", string(condition), format},
			ReleaseDate: release.Format("2006-01-02"),
			CreatedAt:   time.Now().UTC().AddDate(0, 0, -rng.Intn(365)).Format(time.RFC3339),
			Label:       label,
			Sku:         fmt.Sprintf("SGR-%04d", i),
		}
		if rng.Intn(10) == 0 {
			out := false
			p.InStock = &out
		}
		if rng.Intn(4) == 0 {
			sale := price * 0.8
			p.SalePrice = &sale
			p.OnSale = true
		}
		if i > count-12 {
			p.IsNewArrival = true
		}
		products = append(products, p)
	}
	return products
}
