package adapter

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-space-sync/models"
)

// collectionPage is the envelope of every paged collection response.
type collectionPage struct {
	Items []models.Entity `json:"items"`
	Total int             `json:"total"`
	Skip  int             `json:"skip"`
	Limit int             `json:"limit"`
}

// listAll walks path with skip/limit paging until total items were read or a
// page comes back empty.
func (c *restClient) listAll(ctx context.Context, path string, pageSize int) ([]models.Entity, error) {
	items := make([]models.Entity, 0)

	for skip := 0; ; {
		var page collectionPage
		req := c.client.R().
			SetQueryParam("skip", strconv.Itoa(skip)).
			SetQueryParam("limit", strconv.Itoa(pageSize))
		if err := c.execute(ctx, req, http.MethodGet, path, &page); err != nil {
			return nil, err
		}

		items = append(items, page.Items...)
		skip += len(page.Items)

		if len(page.Items) == 0 || skip >= page.Total {
			return items, nil
		}
	}
}
