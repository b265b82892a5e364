package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/heartmarshall/llmstxt-backend/internal/domain"
	"github.com/heartmarshall/llmstxt-backend/internal/paginate"
)

// descriptor states everything that differs between resource types: the
// query, the exact connection field in the response, and how nodes map to
// items and lines.
type descriptor[N any] struct {
	resource   domain.ResourceType
	query      string
	connection string
	toItem     func(N) domain.ResourceItem
	render     func(shop string, item domain.ResourceItem) []string
}

type connection[N any] struct {
	Edges []struct {
		Cursor string `json:"cursor"`
		Node   N      `json:"node"`
	} `json:"edges"`
	PageInfo struct {
		HasNextPage bool   `json:"hasNextPage"`
		EndCursor   string `json:"endCursor"`
	} `json:"pageInfo"`
}

type resourceFetcher[N any] struct {
	origin    Origin
	desc      descriptor[N]
	operation string
}

func newResourceFetcher[N any](origin Origin, desc descriptor[N]) (*resourceFetcher[N], error) {
	op, err := parsePaginatedOperation(desc.query)
	if err != nil {
		return nil, fmt.Errorf("fetcher %s: %w", desc.resource.Label(), err)
	}
	return &resourceFetcher[N]{origin: origin, desc: desc, operation: op.Name}, nil
}

func (f *resourceFetcher[N]) Resource() domain.ResourceType { return f.desc.resource }

func (f *resourceFetcher[N]) FetchBatch(ctx context.Context, tenant domain.Tenant, w paginate.Window) (paginate.Page[domain.ResourceItem], error) {
	vars := map[string]any{"first": w.Limit}
	if w.Cursor != "" {
		vars["after"] = w.Cursor
	}

	data, err := f.origin.Do(ctx, tenant, f.desc.query, f.operation, vars)
	if err != nil {
		if errors.Is(err, domain.ErrOriginDataMissing) {
			return paginate.Page[domain.ResourceItem]{}, &domain.OriginError{Resource: f.desc.resource, Err: err}
		}
		return paginate.Page[domain.ResourceItem]{}, domain.NewOriginQueryError(f.desc.resource, err)
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return paginate.Page[domain.ResourceItem]{}, domain.NewOriginDataMissingError(f.desc.resource, "decode data: "+err.Error())
	}
	raw, ok := root[f.desc.connection]
	if !ok || string(raw) == "null" {
		return paginate.Page[domain.ResourceItem]{}, domain.NewOriginDataMissingError(f.desc.resource, "no "+f.desc.connection+" connection")
	}

	var conn connection[N]
	if err := json.Unmarshal(raw, &conn); err != nil {
		return paginate.Page[domain.ResourceItem]{}, domain.NewOriginDataMissingError(f.desc.resource, "decode "+f.desc.connection+": "+err.Error())
	}

	items := make([]domain.ResourceItem, 0, len(conn.Edges))
	for _, e := range conn.Edges {
		item := f.desc.toItem(e.Node)
		item.Type = f.desc.resource
		items = append(items, item)
	}

	next := conn.PageInfo.EndCursor
	if next == "" && len(conn.Edges) > 0 {
		next = conn.Edges[len(conn.Edges)-1].Cursor
	}

	return paginate.Page[domain.ResourceItem]{
		Items:      items,
		NextCursor: next,
		HasMore:    conn.PageInfo.HasNextPage,
	}, nil
}

func (f *resourceFetcher[N]) Render(shop string, item domain.ResourceItem) []string {
	if !item.Valid() {
		return nil
	}
	return f.desc.render(shop, item)
}
