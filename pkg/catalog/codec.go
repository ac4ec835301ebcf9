package catalog

import (
	"net/url"
	"strings"

	"github.com/grooveshop/storefront/pkg/types"
)

// TokenAll is the token emitted for a fully-default category selection,
// kept literal for backwards compatibility with old links.
const TokenAll = "All"

// EncodeFilter serializes the category intent to a shareable token.
// Defaults collapse to "All"; anything else becomes a query-string
// shaped token with keys b (browse), f (format), g (genre) and
// c (legacy token), each omitted at its neutral value.
func EncodeFilter(state *types.FilterState) string {
	if state.CategoryIsDefault() {
		return TokenAll
	}
	params := url.Values{}
	if b := state.Browse(); b != types.BrowseAll {
		params.Set("b", string(b))
	}
	if f := state.Format(); f != types.FormatAll {
		params.Set("f", string(f))
	}
	if g := state.Genre(); g != types.GenreAll {
		params.Set("g", g)
	}
	if c := state.LegacyToken(); c != "" {
		params.Set("c", c)
	}
	return params.Encode()
}

// DecodeFilter applies a filter token to a state's category intent.
// Tokens without an '=' are plain values classified by membership:
// browse mode, record format, genre, or (failing all of those) a legacy
// token. Structured tokens assign each present key; unknown keys and
// unrecognized values are ignored. Artist and price are untouched.
func DecodeFilter(token string, state *types.FilterState) {
	token = strings.TrimSpace(token)
	if token == "" {
		return
	}
	if !strings.Contains(token, "=") {
		decodePlain(token, state)
		return
	}
	params, err := url.ParseQuery(token)
	if err != nil {
		// Malformed combined tokens fall back to plain classification.
		decodePlain(token, state)
		return
	}
	state.Category = types.DefaultStructured()
	if b := params.Get("b"); types.IsBrowseMode(b) {
		state.SetBrowse(types.BrowseMode(b))
	}
	if f := params.Get("f"); types.IsRecordFormat(f) {
		state.SetFormat(types.RecordFormat(f))
	}
	if g := params.Get("g"); types.IsGenre(g) {
		state.SetGenre(g)
	}
	if c := params.Get("c"); c != "" {
		state.SetLegacy(c)
	}
}

func decodePlain(token string, state *types.FilterState) {
	switch {
	case types.IsBrowseMode(token):
		state.Category = types.DefaultStructured()
		state.SetBrowse(types.BrowseMode(token))
	case types.IsRecordFormat(token):
		state.Category = types.DefaultStructured()
		state.SetFormat(types.RecordFormat(token))
	case types.IsGenre(token):
		state.Category = types.DefaultStructured()
		state.SetGenre(token)
	default:
		state.SetLegacy(token)
	}
}
