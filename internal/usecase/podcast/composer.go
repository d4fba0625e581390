// Package podcast composes podcast scripts from approved articles and drives
// speech synthesis over the result.
package podcast

import (
	"fmt"
	"strings"

	"chutti-news/internal/domain/entity"
)

// Fixed Tamil framing lines around the numbered article entries.
const (
	scriptIntro = "வணக்கம் குழந்தைகளே! இன்றைய செய்திகளை பார்ப்போம்.\n\n"
	scriptOutro = "\nஇன்றைய செய்திகள் இத்துடன் முடிகிறது. நன்றி!"
)

// ComposeScript builds the podcast script from approved articles in order.
// Each article contributes a numbered Tamil title line and, when present, its
// Tamil summary. An empty input produces an empty script.
func ComposeScript(articles []*entity.Article) string {
	if len(articles) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(scriptIntro)

	for i, article := range articles {
		fmt.Fprintf(&b, "%d. %s\n", i+1, article.TamilTitle)
		if article.TamilSummary != "" {
			b.WriteString(article.TamilSummary)
			b.WriteString("\n\n")
		}
	}

	b.WriteString(scriptOutro)
	return b.String()
}
