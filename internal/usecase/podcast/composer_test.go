package podcast_test

import (
	"testing"

	"chutti-news/internal/domain/entity"
	"chutti-news/internal/usecase/podcast"
)

func TestComposeScript_Empty(t *testing.T) {
	if got := podcast.ComposeScript(nil); got != "" {
		t.Errorf("ComposeScript(nil) = %q, want empty", got)
	}
	if got := podcast.ComposeScript([]*entity.Article{}); got != "" {
		t.Errorf("ComposeScript(empty) = %q, want empty", got)
	}
}

func TestComposeScript_TwoArticles(t *testing.T) {
	articles := []*entity.Article{
		{TamilTitle: "மழை எச்சரிக்கை", TamilSummary: "தெற்கு மாவட்டங்களில் கனமழை எதிர்பார்க்கப்படுகிறது"},
		{TamilTitle: "அறிவியல் கண்காட்சி", TamilSummary: "மாணவர்கள் புதிய கண்டுபிடிப்புகளை காட்சிப்படுத்தினர்"},
	}

	want := "வணக்கம் குழந்தைகளே! இன்றைய செய்திகளை பார்ப்போம்.\n\n" +
		"1. மழை எச்சரிக்கை\n" +
		"தெற்கு மாவட்டங்களில் கனமழை எதிர்பார்க்கப்படுகிறது\n\n" +
		"2. அறிவியல் கண்காட்சி\n" +
		"மாணவர்கள் புதிய கண்டுபிடிப்புகளை காட்சிப்படுத்தினர்\n\n" +
		"\nஇன்றைய செய்திகள் இத்துடன் முடிகிறது. நன்றி!"

	if got := podcast.ComposeScript(articles); got != want {
		t.Errorf("ComposeScript() = %q, want %q", got, want)
	}
}

func TestComposeScript_SkipsEmptySummary(t *testing.T) {
	articles := []*entity.Article{
		{TamilTitle: "தலைப்பு மட்டும்", TamilSummary: ""},
	}

	want := "வணக்கம் குழந்தைகளே! இன்றைய செய்திகளை பார்ப்போம்.\n\n" +
		"1. தலைப்பு மட்டும்\n" +
		"\nஇன்றைய செய்திகள் இத்துடன் முடிகிறது. நன்றி!"

	if got := podcast.ComposeScript(articles); got != want {
		t.Errorf("ComposeScript() = %q, want %q", got, want)
	}
}
