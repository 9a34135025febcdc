package render_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.nivo.ch/panelctl/internal/ui/render"
)

func plainColors(t *testing.T) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestTable_Alignment(t *testing.T) {
	plainColors(t)

	table := render.NewTable("DOMAIN", "DISK", "STATUS").
		Row("example.org", "100/1000 MB", render.Active(true)).
		Row("a.ch", "5/unlimited", render.Active(false)).
		Row("very-long-domain-name.example.net", "0/100 MB", render.Active(true))

	g := goldie.New(t)
	g.Assert(t, "table_domains", []byte(table.String()))
}

func TestTable_MissingCells(t *testing.T) {
	plainColors(t)

	table := render.NewTable("NAME", "TARGETS").
		Row("info").
		Row("sales", "a@example.org", "ignored")

	g := goldie.New(t)
	g.Assert(t, "table_ragged", []byte(table.String()))
}

func TestTable_Empty(t *testing.T) {
	plainColors(t)

	table := render.NewTable("NAME")
	assert.True(t, table.Empty())
	assert.Equal(t, "NAME\n", table.String())
}
