package fetcher

import (
	"strings"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
)

const productsQuery = `
query GetProducts($first: Int!, $after: String) {
  products(first: $first, after: $after, query: "status:active") {
    edges {
      cursor
      node {
        id
        title
        handle
        onlineStoreUrl
        productType
        priceRangeV2 {
          minVariantPrice {
            amount
            currencyCode
          }
        }
        options(first: 3) {
          name
          values
        }
      }
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}`

type productNode struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Handle         string  `json:"handle"`
	OnlineStoreURL *string `json:"onlineStoreUrl"`
	ProductType    string  `json:"productType"`
	PriceRangeV2   *struct {
		MinVariantPrice struct {
			Amount       string `json:"amount"`
			CurrencyCode string `json:"currencyCode"`
		} `json:"minVariantPrice"`
	} `json:"priceRangeV2"`
	Options []struct {
		Name   string   `json:"name"`
		Values []string `json:"values"`
	} `json:"options"`
}

var productsDescriptor = descriptor[productNode]{
	resource:   domain.ResourceCatalogItem,
	query:      productsQuery,
	connection: "products",
	toItem:     productToItem,
	render:     renderProduct,
}

func productToItem(n productNode) domain.ResourceItem {
	item := domain.ResourceItem{
		ID:      n.ID,
		Title:   n.Title,
		Handle:  n.Handle,
		Catalog: &domain.CatalogDetails{Category: n.ProductType},
	}
	if n.OnlineStoreURL != nil {
		item.URL = *n.OnlineStoreURL
	}
	if n.PriceRangeV2 != nil {
		item.Catalog.MinPrice = domain.Money{
			Amount:       n.PriceRangeV2.MinVariantPrice.Amount,
			CurrencyCode: n.PriceRangeV2.MinVariantPrice.CurrencyCode,
		}
	}
	for i, o := range n.Options {
		if i == domain.MaxOptionSets {
			break
		}
		item.Catalog.Options = append(item.Catalog.Options, domain.OptionSet{Name: o.Name, Values: o.Values})
	}
	return item
}

// renderProduct emits the link line (two trailing spaces force a markdown
// line break), the price line, and the color option when present.
func renderProduct(shop string, item domain.ResourceItem) []string {
	url := item.URL
	if url == "" {
		url = "https://" + shop + "/products/" + item.Handle
	}
	lines := []string{"- [" + item.Title + "](" + url + ")  "}

	if item.Catalog == nil {
		return lines
	}
	if p := item.Catalog.MinPrice; p.Amount != "" {
		lines = append(lines, "  Price: "+strings.TrimSpace(p.Amount+" "+p.CurrencyCode))
	}
	for _, o := range item.Catalog.Options {
		if strings.EqualFold(o.Name, "color") && len(o.Values) > 0 {
			lines = append(lines, "  "+o.Name+": "+strings.Join(o.Values, ", "))
		}
	}
	return lines
}
