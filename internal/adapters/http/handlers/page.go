package handlers

import (
	"net/url"

	"bloodlink-web/internal/adapters/http/middleware"
	"bloodlink-web/internal/adapters/http/views"
	"bloodlink-web/internal/config"
	"bloodlink-web/internal/pkg/listing"
	"bloodlink-web/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"
)

// pageMeta collects the chrome state for the current request
func pageMeta(c *fiber.Ctx, cfg *config.Config, title string, toasts []listing.Toast) views.PageMeta {
	return views.PageMeta{
		Title:    title,
		Path:     c.Path(),
		URL:      c.OriginalURL(),
		Theme:    middleware.CurrentTheme(c),
		Identity: middleware.CurrentIdentity(c),
		LoginURL: middleware.LoginURL(cfg, c.OriginalURL()),
		Toasts:   toasts,
	}
}

// renderHTML writes a gomponents node as the response body
func renderHTML(c *fiber.Ctx, status int, node g.Node) error {
	c.Status(status)
	c.Type("html", "utf-8")
	return node.Render(c)
}

// queryValues returns the current query string without the page parameter
func queryValues(c *fiber.Ctx) url.Values {
	q, err := url.ParseQuery(string(c.Context().QueryArgs().QueryString()))
	if err != nil {
		return url.Values{}
	}
	q.Del("page")
	return q
}

// hasAnyQuery reports whether any of keys is present, even with an empty value
func hasAnyQuery(c *fiber.Ctx, keys ...string) bool {
	args := c.Context().QueryArgs()
	for _, k := range keys {
		if args.Has(k) {
			return true
		}
	}
	return false
}

// firstToast returns the message of the first error toast, if any
func firstToast(toasts []listing.Toast) string {
	for _, t := range toasts {
		if t.Level == listing.LevelError {
			return t.Message
		}
	}
	return ""
}

// viewJSON sends a page view model, as 502 when its fetch failed
func viewJSON(c *fiber.Ctx, failed bool, toasts []listing.Toast, message string, data interface{}) error {
	if failed {
		return response.Degraded(c, firstToast(toasts), data)
	}
	return response.Success(c, message, data)
}

// sendError writes the JSON error envelope for a mapped failure status
func sendError(c *fiber.Ctx, status int, msg string) error {
	switch status {
	case fiber.StatusBadRequest:
		return response.BadRequest(c, msg)
	case fiber.StatusNotFound:
		return response.NotFound(c, msg)
	case fiber.StatusConflict:
		return response.Conflict(c, msg)
	case fiber.StatusBadGateway:
		return response.BadGateway(c, msg)
	case fiber.StatusInternalServerError:
		return response.InternalServerError(c, msg)
	}
	return response.Error(c, status, msg)
}

func errorToast(msg string) []listing.Toast {
	return []listing.Toast{{Level: listing.LevelError, Message: msg}}
}
