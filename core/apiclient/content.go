package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Package is a credit-repair service package shown on the pricing page.
type Package struct {
	Slug           string   `json:"slug"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	DurationMonths int      `json:"duration_months"`
	Features       []string `json:"features"`
}

// BlogPost is a marketing article.
type BlogPost struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

type packagesResponse struct {
	Packages []Package `json:"packages"`
}

type blogsResponse struct {
	Blogs []BlogPost `json:"blogs"`
}

type blogResponse struct {
	Blog BlogPost `json:"blog"`
}

// Packages lists the service packages.
func (c *Client) Packages(ctx context.Context) ([]Package, error) {
	var out packagesResponse
	if err := c.do(ctx, http.MethodGet, "/api/packages", nil, &out); err != nil {
		return nil, err
	}
	return out.Packages, nil
}

// Blogs lists published articles without their full content.
func (c *Client) Blogs(ctx context.Context) ([]BlogPost, error) {
	var out blogsResponse
	if err := c.do(ctx, http.MethodGet, "/api/blogs", nil, &out); err != nil {
		return nil, err
	}
	return out.Blogs, nil
}

// Blog fetches one article by slug, including its content.
func (c *Client) Blog(ctx context.Context, slug string) (BlogPost, error) {
	var out blogResponse
	if err := c.do(ctx, http.MethodGet, "/api/blogs/"+url.PathEscape(slug), nil, &out); err != nil {
		return BlogPost{}, err
	}
	return out.Blog, nil
}
