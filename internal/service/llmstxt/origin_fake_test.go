package llmstxt

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
)

var operationConnection = map[string]string{
	"GetProducts":    "products",
	"GetCollections": "collections",
	"GetPages":       "pages",
	"GetArticles":    "articles",
}

var errUpstream = errors.New("upstream returned 502")

// fakeOrigin serves an in-memory storefront. Cursors are item offsets.
type fakeOrigin struct {
	mu     sync.Mutex
	shop   map[string]any
	nodes  map[string][]map[string]any
	failOn map[string]int // connection -> 1-based call number that fails
	calls  map[string]int
	limits map[string][]int
}

func newFakeOrigin() *fakeOrigin {
	return &fakeOrigin{
		shop:   map[string]any{"name": "Shop A", "description": "Demo store", "primaryDomain": map[string]any{"url": "https://shop-a.myshopify.com"}},
		nodes:  make(map[string][]map[string]any),
		failOn: make(map[string]int),
		calls:  make(map[string]int),
		limits: make(map[string][]int),
	}
}

func (o *fakeOrigin) Do(_ context.Context, _ domain.Tenant, _ string, operationName string, variables map[string]any) (json.RawMessage, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if operationName == "GetShop" {
		return json.Marshal(map[string]any{"shop": o.shop})
	}

	conn := operationConnection[operationName]
	o.calls[conn]++
	if n, ok := o.failOn[conn]; ok && o.calls[conn] == n {
		return nil, errUpstream
	}

	first := variables["first"].(int)
	o.limits[conn] = append(o.limits[conn], first)

	start := 0
	if after, ok := variables["after"].(string); ok {
		start, _ = strconv.Atoi(after)
	}
	all := o.nodes[conn]
	end := min(start+first, len(all))

	edges := make([]map[string]any, 0, end-start)
	for i := start; i < end; i++ {
		edges = append(edges, map[string]any{"cursor": strconv.Itoa(i + 1), "node": all[i]})
	}
	return json.Marshal(map[string]any{
		conn: map[string]any{
			"edges":    edges,
			"pageInfo": map[string]any{"hasNextPage": end < len(all), "endCursor": strconv.Itoa(end)},
		},
	})
}

func (o *fakeOrigin) callCount(conn string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.calls[conn]
}

func (o *fakeOrigin) requestedLimits(conn string) []int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]int(nil), o.limits[conn]...)
}

func productNode(n int, price string) map[string]any {
	id := strconv.Itoa(n)
	return map[string]any{
		"id":             "gid://shopify/Product/" + id,
		"title":          "Product " + id,
		"handle":         "product-" + id,
		"onlineStoreUrl": nil,
		"productType":    "",
		"priceRangeV2": map[string]any{
			"minVariantPrice": map[string]any{"amount": price, "currencyCode": "USD"},
		},
		"options": []any{},
	}
}

func articleNode(n int) map[string]any {
	id := strconv.Itoa(n)
	return map[string]any{
		"id":     "gid://shopify/Article/" + id,
		"title":  "Article " + id,
		"handle": "article-" + id,
		"blog":   map[string]any{"handle": "news"},
	}
}

func simpleNode(kind string, n int) map[string]any {
	id := strconv.Itoa(n)
	return map[string]any{
		"id":     "gid://shopify/" + kind + "/" + id,
		"title":  kind + " " + id,
		"handle": "handle-" + id,
	}
}
