package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"net/http/pprof"
	"os"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/grooveshop/storefront/pkg/cart"
	"github.com/grooveshop/storefront/pkg/checkout"
	"github.com/grooveshop/storefront/pkg/common"
	"github.com/grooveshop/storefront/pkg/lookup"
	"github.com/grooveshop/storefront/pkg/messaging"
	"github.com/grooveshop/storefront/pkg/server"
	"github.com/grooveshop/storefront/pkg/storage"
	"github.com/grooveshop/storefront/pkg/types"
)

var enableProfiling = flag.Bool("profiling", true, "enable profiling endpoints")
var demoMode = flag.Bool("demo", false, "seed a demo catalog when the snapshot is empty")
var rabbitVHost = os.Getenv("RABBIT_HOST")
var rabbitUrl = os.Getenv("RABBIT_URL")
var redisUrl = os.Getenv("REDIS_URL")
var redisPassword = os.Getenv("REDIS_PASSWORD")
var postgresUrl = os.Getenv("POSTGRES_URL")
var topicPrefix = os.Getenv("TOPIC_PREFIX")
var dataDir = os.Getenv("DATA_DIR")
var listenAddress = ":8080"
var debugAddress = ":8081"

var store = server.NewProductStore()
var ws = server.NewWebServer(store)
var db *storage.SnapshotStorage

var catalogSync *messaging.CatalogSync
var upsertQueue *common.BatchQueue[types.Product]

var done = false

func init() {
	flag.Parse()
	if topicPrefix == "" {
		topicPrefix = "storefront"
	}
	if dataDir == "" {
		dataDir = "data"
	}
	db = storage.NewSnapshotStorage(dataDir)

	// Broker deliveries land here; applying them in chunks keeps the
	// store lock out of the consumer goroutine.
	upsertQueue = common.NewBatchQueue(ws.UpsertProducts, 256)
}

func loadCatalog(wg *sync.WaitGroup) {
	wg.Add(1)
	go func() {
		defer wg.Done()

		loaded := 0
		err := db.Load(func(p *types.Product) {
			upsertQueue.Add(*p)
			loaded++
		})
		if err != nil {
			log.Printf("Failed to load catalog snapshot: %v", err)
		}
		upsertQueue.Flush()
		log.Printf("Catalog snapshot loaded, %d products", loaded)

		if loaded == 0 && *demoMode {
			seed := demoProducts(100)
			ws.UpsertProducts(seed)
			log.Printf("Demo catalog seeded, %d products", len(seed))
		}

		if rabbitUrl != "" {
			catalogSync = messaging.NewCatalogSync(messaging.RabbitConfig{
				Url:         rabbitUrl,
				VHost:       rabbitVHost,
				TopicPrefix: topicPrefix,
			})
			if err := catalogSync.Connect(); err != nil {
				log.Printf("Failed to connect to RabbitMQ, running from snapshot only: %v", err)
				catalogSync = nil
			} else if err := catalogSync.Listen(&queuedSink{}); err != nil {
				log.Printf("Failed to start catalog listener: %v", err)
			} else {
				log.Printf("Listening for catalog changes on %s", topicPrefix)
			}
		}

		done = true
	}()
}

// queuedSink funnels broker deliveries through the batch queue so bulk
// upserts coalesce.
type queuedSink struct{}

func (queuedSink) UpsertProducts(items []types.Product) {
	upsertQueue.Add(items...)
}

func (queuedSink) DeleteProduct(id string) {
	upsertQueue.Flush()
	ws.DeleteProduct(id)
}

func saveSnapshot(ctx context.Context) error {
	upsertQueue.Flush()
	return db.Save(store.Products())
}

func main() {
	wg := sync.WaitGroup{}
	loadCatalog(&wg)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", ws.CatalogHandler()))

	if redisUrl != "" {
		cartServer := &cart.CartServer{
			Storage: cart.NewRedisCartStorage(redisUrl, redisPassword, 0),
			Catalog: store,
		}
		mux.Handle("/api/cart/", http.StripPrefix("/api/cart", cartServer.CartHandler()))

		checkoutServer := &checkout.Server{
			Carts:   cartServer.Storage,
			Gateway: checkout.NoopGateway{},
			OnOrderPlaced: func(order *checkout.Order) {
				log.Printf("Order %s placed, %d cents", order.Id, order.TotalCents)
			},
		}
		if rabbitUrl == "" && !*demoMode {
			checkoutServer.Gateway = checkout.UnavailableGateway{}
		}
		mux.Handle("/api/checkout/", http.StripPrefix("/api/checkout", checkoutServer.Handler()))
		log.Printf("Cart and checkout enabled, redis: %s", redisUrl)
	} else {
		log.Println("No redis url provided, cart disabled")
	}

	if postgresUrl != "" {
		pool, err := pgxpool.New(context.Background(), postgresUrl)
		if err != nil {
			log.Fatalf("Failed to create postgres pool: %v", err)
		}
		lookupServer := lookup.NewServer(pool)
		mux.Handle("/admin/lookup/", http.StripPrefix("/admin/lookup", lookupServer.Handler()))
		log.Println("Lookup table admin enabled")
	}

	debugMux := http.NewServeMux()
	debugMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if !done {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("not ready"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	debugMux.Handle("/metrics", promhttp.Handler())
	if enableProfiling != nil && *enableProfiling {
		log.Println("Profiling enabled")
		debugMux.HandleFunc("/debug/pprof/", pprof.Index)
		debugMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		debugMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		debugMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		debugMux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}
	go func() {
		log.Printf("Starting debug server %v", debugAddress)
		log.Fatal(http.ListenAndServe(debugAddress, debugMux))
	}()

	timeouts := common.LoadTimeoutConfig(common.TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       30 * time.Second,
		Write:      30 * time.Second,
		Idle:       60 * time.Second,
		Shutdown:   15 * time.Second,
		Hook:       5 * time.Second,
	})
	srv := common.NewServerWithTimeouts(&http.Server{Addr: listenAddress, Handler: mux}, timeouts)

	common.RunServerWithShutdown(srv, "storefront api", timeouts.Shutdown, timeouts.Hook,
		saveSnapshot,
		func(ctx context.Context) error {
			if catalogSync != nil {
				catalogSync.Close()
			}
			upsertQueue.Stop()
			return nil
		},
	)
}
