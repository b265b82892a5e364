package fetcher

import "github.com/heartmarshall/llmstxt-backend/internal/domain"

const pagesQuery = `
query GetPages($first: Int!, $after: String) {
  pages(first: $first, after: $after) {
    edges {
      cursor
      node {
        id
        title
        handle
      }
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}`

type pageNode struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Handle string `json:"handle"`
}

var pagesDescriptor = descriptor[pageNode]{
	resource:   domain.ResourceDocument,
	query:      pagesQuery,
	connection: "pages",
	toItem: func(n pageNode) domain.ResourceItem {
		return domain.ResourceItem{ID: n.ID, Title: n.Title, Handle: n.Handle}
	},
	render: func(shop string, item domain.ResourceItem) []string {
		return []string{"- [" + item.Title + "](https://" + shop + "/pages/" + item.Handle + ")"}
	},
}
