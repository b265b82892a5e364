package fetcher

import "github.com/heartmarshall/llmstxt-backend/internal/domain"

const articlesQuery = `
query GetArticles($first: Int!, $after: String) {
  articles(first: $first, after: $after) {
    edges {
      cursor
      node {
        id
        title
        handle
        blog {
          handle
        }
      }
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}`

type articleNode struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Handle string `json:"handle"`
	Blog   *struct {
		Handle string `json:"handle"`
	} `json:"blog"`
}

var articlesDescriptor = descriptor[articleNode]{
	resource:   domain.ResourceArticle,
	query:      articlesQuery,
	connection: "articles",
	toItem: func(n articleNode) domain.ResourceItem {
		item := domain.ResourceItem{ID: n.ID, Title: n.Title, Handle: n.Handle}
		if n.Blog != nil {
			item.ParentHandle = n.Blog.Handle
		}
		return item
	},
	render: renderArticle,
}

// renderArticle needs the blog handle to build the storefront path.
func renderArticle(shop string, item domain.ResourceItem) []string {
	if item.ParentHandle == "" {
		return nil
	}
	return []string{"- [" + item.Title + "](https://" + shop + "/blogs/" + item.ParentHandle + "/" + item.Handle + ")"}
}
