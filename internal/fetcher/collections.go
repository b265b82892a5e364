package fetcher

import "github.com/heartmarshall/llmstxt-backend/internal/domain"

const collectionsQuery = `
query GetCollections($first: Int!, $after: String) {
  collections(first: $first, after: $after) {
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

type collectionNode struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Handle string `json:"handle"`
}

var collectionsDescriptor = descriptor[collectionNode]{
	resource:   domain.ResourceGrouping,
	query:      collectionsQuery,
	connection: "collections",
	toItem: func(n collectionNode) domain.ResourceItem {
		return domain.ResourceItem{ID: n.ID, Title: n.Title, Handle: n.Handle}
	},
	render: func(shop string, item domain.ResourceItem) []string {
		return []string{"- [" + item.Title + "](https://" + shop + "/collections/" + item.Handle + ")"}
	},
}
