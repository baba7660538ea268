package http

import (
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Link is a HATEOAS navigation link: relation, target and HTTP method.
type Link struct {
	Rel    string `json:"rel"`
	Href   string `json:"href"`
	Method string `json:"method"`
}

func newLink(rel, href string) Link {
	return Link{Rel: rel, Href: href, Method: http.MethodGet}
}

func newActionLink(rel, href, method string) Link {
	return Link{Rel: rel, Href: href, Method: method}
}

// pagedResponse is the collection envelope shared by every resource.
type pagedResponse struct {
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	Total      int         `json:"total"`
	TotalPages int         `json:"totalPages"`
	Items      interface{} `json:"items"`
	Links      []Link      `json:"_links"`
}

func newPagedResponse(c *gin.Context, path string, page, pageSize, total int, items interface{}, extra url.Values) pagedResponse {
	return pagedResponse{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages(total, pageSize),
		Items:      items,
		Links:      collectionLinks(c, path, page, pageSize, total, extra),
	}
}

func totalPages(total, pageSize int) int {
	if total == 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(pageSize)))
}

// parsePageParams clamps page to >= 1 and pageSize to [1, 100]. Anything
// unparseable falls back to the defaults.
func parsePageParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// collectionLinks is resource-agnostic: self always, prev iff page > 1,
// next iff page < totalPages. Extra query params (e.g. patio) are carried
// into every href.
func collectionLinks(c *gin.Context, path string, page, pageSize, total int, extra url.Values) []Link {
	pages := totalPages(total, pageSize)

	links := []Link{newLink("self", pageHref(c, path, page, pageSize, extra))}
	if page > 1 {
		links = append(links, newLink("prev", pageHref(c, path, page-1, pageSize, extra)))
	}
	if page < pages {
		links = append(links, newLink("next", pageHref(c, path, page+1, pageSize, extra)))
	}
	return links
}

// resourceLinks carries the self/update/delete triple every single-resource
// representation advertises.
func resourceLinks(c *gin.Context, path string, id int64) []Link {
	href := resourceHref(c, path, id)
	return []Link{
		newLink("self", href),
		newActionLink("update", href, http.MethodPut),
		newActionLink("delete", href, http.MethodDelete),
	}
}

func resourceHref(c *gin.Context, path string, id int64) string {
	return fmt.Sprintf("%s%s/%d", baseURL(c), path, id)
}

func pageHref(c *gin.Context, path string, page, pageSize int, extra url.Values) string {
	params := url.Values{}
	for key, values := range extra {
		for _, value := range values {
			params.Add(key, value)
		}
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))

	return baseURL(c) + path + "?" + params.Encode()
}

func baseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
