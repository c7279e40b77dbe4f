package pages

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-dashboard/internal/app/models"
)

func TestLayoutPage(t *testing.T) {
	var sb strings.Builder
	err := LayoutPage(models.LayoutTempl{
		Title:     "Dashboard <test>",
		Nav:       models.MainNav,
		ActiveNav: "Dashboard",
		Content:   templ.Raw(`<section id="inner">x</section>`),
	}).Render(context.Background(), &sb)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	require.NoError(t, err)

	assert.Equal(t, "Dashboard <test>", doc.Find("title").Text())
	assert.Equal(t, 1, doc.Find("main#content section#inner").Length())

	active := doc.Find(`nav a[aria-current="page"]`)
	require.Equal(t, 1, active.Length())
	href, _ := active.Attr("href")
	assert.Equal(t, "/dashboard", href)
}

func TestLayoutPage_NilContent(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, LayoutPage(models.LayoutTempl{Title: "Empty"}).Render(context.Background(), &sb))
	assert.Contains(t, sb.String(), `<main id="content"></main>`)
}
