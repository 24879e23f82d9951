package service

import (
	"context"
	"errors"
	"strings"

	"gogokodo/internal/page/model"
	"gogokodo/internal/page/repository"
)

// DefaultTitle is used when a content record has an empty title.
const DefaultTitle = "Go Go KoDO"

var (
	// ErrContentNotFound means no content record exists for the requested path.
	ErrContentNotFound = errors.New("content not found")
	// ErrTemplateMissing means a content record references a template id that
	// does not exist. This is a broken reference, not a missing page.
	ErrTemplateMissing = errors.New("content references a missing template")
)

type PageService struct {
	Repo *repository.PageRepository
}

func NewPageService(repo *repository.PageRepository) *PageService {
	return &PageService{Repo: repo}
}

// ResolveContent looks up a content record by request path. The first "/" in
// the path is removed by a single literal replace (the storage key for "/x"
// is "x"); this intentionally mirrors the read side only — writes persist the
// raw path verbatim.
func (s *PageService) ResolveContent(ctx context.Context, path string) (*model.Content, error) {
	key := strings.Replace(path, "/", "", 1)
	return s.Repo.GetContent(ctx, key)
}

func (s *PageService) ResolveTemplate(ctx context.Context, id string) (*model.Template, error) {
	return s.Repo.GetTemplate(ctx, id)
}

// RenderPage resolves the content record for path, then its template, and
// composes the final document. Template resolution never runs when the
// content is absent.
func (s *PageService) RenderPage(ctx context.Context, path string) (string, error) {
	content, err := s.ResolveContent(ctx, path)
	if err != nil {
		return "", err
	}
	if content == nil {
		return "", ErrContentNotFound
	}

	tmpl, err := s.ResolveTemplate(ctx, model.TemplateKey(content.TemplateID))
	if err != nil {
		return "", err
	}
	if tmpl == nil {
		return "", ErrTemplateMissing
	}

	return Compose(tmpl, content), nil
}

func (s *PageService) SaveTemplate(ctx context.Context, id string, t model.Template) error {
	return s.Repo.PutTemplate(ctx, id, t)
}

func (s *PageService) SaveContent(ctx context.Context, path string, c model.Content) error {
	return s.Repo.PutContent(ctx, path, c)
}

// Compose assembles the full HTML document from a template and a content
// record; both must be non-nil. Nothing is escaped anywhere in this pipeline:
// structure, content, style and script are trusted because only holders of
// the admin secret can write them. Only the first occurrence of the
// placeholder token is substituted; a template without the token silently
// drops the content.
func Compose(t *model.Template, c *model.Content) string {
	title := c.Title
	if title == "" {
		title = DefaultTitle
	}
	body := strings.Replace(t.Structure, model.PlaceholderToken, c.Content, 1)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<title>" + title + "</title>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	b.WriteString("<style>\n" + c.Style + "\n</style>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n<script defer>\n")
	b.WriteString("document.addEventListener('DOMContentLoaded', function() {\n")
	b.WriteString(c.Script)
	b.WriteString("\n});\n</script>\n</html>\n")
	return b.String()
}
