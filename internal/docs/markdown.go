package docs

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// OverviewSubtitle is the subtitle given to content that appears before the
// first item heading of a Markdown document.
const OverviewSubtitle = "Overview"

// ParseMarkdown reads a Markdown document into a LegacySection.
//
// The first level-1 heading becomes the title (the file stem otherwise) and
// the lower-cased file stem becomes the id. Every heading of level 2 or
// deeper opens a new item: paragraphs become its text, list items its
// bullets, code blocks its code and the first image its image.
func ParseMarkdown(r io.Reader, filename string) (LegacySection, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return LegacySection{}, err
	}

	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	sec := LegacySection{ID: strings.ToLower(stem), Title: stem}

	meta, body := splitFrontmatter(string(src))
	src = []byte(body)
	if id := meta["id"]; id != "" {
		sec.ID = id
	}

	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var (
		cur      *ContentItem
		haveH1   bool
		textBuf  bytes.Buffer
		flushCur = func() {
			if cur == nil {
				return
			}
			cur.Text = strings.TrimSpace(textBuf.String())
			sec.Content = append(sec.Content, *cur)
			cur = nil
			textBuf.Reset()
		}
		item = func() *ContentItem {
			if cur == nil {
				cur = &ContentItem{Subtitle: OverviewSubtitle}
			}
			return cur
		}
	)

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := inlineText(node, src, nil)
			if node.Level == 1 && !haveH1 {
				haveH1 = true
				if title != "" {
					sec.Title = title
				}
				continue
			}
			flushCur()
			cur = &ContentItem{Subtitle: title}

		case *ast.FencedCodeBlock:
			it := item()
			it.Code = joinCode(it.Code, blockLines(node, src))
			if lang := string(node.Language(src)); lang != "" && it.Language == "" {
				it.Language = lang
			}

		case *ast.CodeBlock:
			it := item()
			it.Code = joinCode(it.Code, blockLines(node, src))

		case *ast.List:
			it := item()
			it.Bullets = append(it.Bullets, listBullets(node, src)...)

		case *ast.ThematicBreak, *ast.HTMLBlock:
			continue

		default:
			it := item()
			var img *ast.Image
			t := inlineText(n, src, &img)
			if img != nil && it.Image == "" {
				it.Image = string(img.Destination)
				it.ImageCaption = string(img.Title)
				if it.ImageCaption == "" {
					it.ImageCaption = inlineText(img, src, nil)
				}
			}
			if t != "" {
				if textBuf.Len() > 0 {
					textBuf.WriteString("\n\n")
				}
				textBuf.WriteString(t)
			}
		}
	}
	flushCur()

	if title := meta["title"]; title != "" {
		sec.Title = title
	}
	return sec, nil
}

// inlineText collects the text of n's inline descendants. Images are not
// rendered as text; the first one found is stored in *img when img is set.
func inlineText(n ast.Node, src []byte, img **ast.Image) string {
	var buf bytes.Buffer
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch v := c.(type) {
			case *ast.Text:
				buf.Write(v.Segment.Value(src))
				if v.SoftLineBreak() || v.HardLineBreak() {
					buf.WriteByte(' ')
				}
			case *ast.String:
				buf.Write(v.Value)
			case *ast.Image:
				if img != nil && *img == nil {
					*img = v
				}
			default:
				walk(c)
			}
		}
	}
	walk(n)
	return strings.TrimSpace(buf.String())
}

func blockLines(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	return strings.TrimRight(buf.String(), "\n")
}

func joinCode(prev, next string) string {
	if prev == "" {
		return next
	}
	return prev + "\n\n" + next
}

// listBullets flattens a (possibly nested) list into bullet strings.
func listBullets(list *ast.List, src []byte) []string {
	var out []string
	for li := list.FirstChild(); li != nil; li = li.NextSibling() {
		var parts []string
		var nested []string
		for c := li.FirstChild(); c != nil; c = c.NextSibling() {
			if sub, ok := c.(*ast.List); ok {
				nested = append(nested, listBullets(sub, src)...)
				continue
			}
			if t := inlineText(c, src, nil); t != "" {
				parts = append(parts, t)
			}
		}
		if len(parts) > 0 {
			out = append(out, strings.Join(parts, " "))
		}
		out = append(out, nested...)
	}
	return out
}
