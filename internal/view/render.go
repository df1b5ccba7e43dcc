package view

import (
	"github.com/ziadkadry99/abx-navigator/internal/content"
	"github.com/ziadkadry99/abx-navigator/internal/i18n"
)

// Generic renders a title, description and summary, omitting empty fields.
// It serves both part overviews and documents without chapters.
func Generic(title, description, summary string) []Block {
	var blocks []Block
	if title != "" {
		blocks = append(blocks, Heading(1, title))
	}
	if description != "" {
		blocks = append(blocks, Paragraph(description))
	}
	if summary != "" {
		blocks = append(blocks, Paragraph(summary))
	}
	return blocks
}

// Part renders a part's own overview.
func Part(p *content.Part) []Block {
	return Generic(p.Title, p.Description, p.Summary)
}

// Document dispatches on the document's shape.
func Document(d content.Document) []Block {
	switch doc := d.(type) {
	case *content.ChapteredDocument:
		return Chaptered(doc)
	case *content.GenericDocument:
		return Generic(doc.Title, doc.Description, doc.Summary)
	default:
		return nil
	}
}

// Chaptered renders every chapter, section and item of doc in order.
func Chaptered(doc *content.ChapteredDocument) []Block {
	blocks := []Block{Heading(1, doc.Title)}
	for _, ch := range doc.Chapters {
		blocks = append(blocks, Heading(2, ch.Title))
		for _, sec := range ch.Sections {
			blocks = append(blocks, Heading(3, sec.Title))
			if sec.Summary != "" {
				blocks = append(blocks, Block{Kind: KindSummary, Text: sec.Summary})
			}
			if sec.Note != "" {
				blocks = append(blocks, Block{Kind: KindNote, Text: sec.Note, Muted: true})
			}
			for _, item := range sec.Items {
				blocks = append(blocks, Heading(4, item.Title))
				for _, line := range item.Summary {
					blocks = append(blocks, Paragraph(line))
				}
				for _, line := range item.Note {
					blocks = append(blocks, MutedParagraph(line))
				}
			}
		}
	}
	return blocks
}

// ItemDetail renders a single item with a back affordance and its place in
// the document.
func ItemDetail(msgs *i18n.Messages, item content.Item, sectionTitle, chapterTitle string) []Block {
	blocks := []Block{
		{Kind: KindBack, Text: msgs.Back()},
		Heading(1, item.Title),
		{Kind: KindMeta, Text: chapterTitle + " ＞ " + sectionTitle, Muted: true},
	}
	if item.Summary != nil {
		blocks = append(blocks, Heading(2, msgs.Summary()))
		for _, line := range item.Summary {
			blocks = append(blocks, Paragraph(line))
		}
	}
	if item.Note != nil {
		blocks = append(blocks, Heading(2, msgs.Notes()))
		for _, line := range item.Note {
			blocks = append(blocks, Paragraph(line))
		}
	}
	return blocks
}

// Landing renders the about and disclaimer sections of the guide.
func Landing(msgs *i18n.Messages, app content.App) []Block {
	var blocks []Block
	if app.About != nil {
		blocks = append(blocks, Heading(2, msgs.About()))
		for _, line := range app.About {
			blocks = append(blocks, Paragraph(line))
		}
	}
	if app.Disclaimer != nil {
		blocks = append(blocks, Heading(2, msgs.Disclaimer()))
		for _, line := range app.Disclaimer {
			blocks = append(blocks, MutedParagraph(line))
		}
	}
	return blocks
}

// Error renders a single error message.
func Error(message string) []Block {
	return []Block{{Kind: KindError, Text: message}}
}
