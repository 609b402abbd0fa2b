package analysis

import (
	"strings"
	"testing"

	"github.com/poiesic/docvault/core"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeContent_EmptyText(t *testing.T) {
	title, vendor, category := AnalyzeContent("")
	assert.Equal(t, UnknownTitle, title)
	assert.Equal(t, UnknownVendor, vendor)
	assert.Equal(t, core.CategoryGeneral, category)
}

func TestAnalyzeContent_Title(t *testing.T) {
	t.Run("short first line becomes title", func(t *testing.T) {
		title, _, _ := AnalyzeContent("Q3 Engineering Report\nbody text")
		assert.Equal(t, "Q3 Engineering Report", title)
	})

	t.Run("first line is trimmed", func(t *testing.T) {
		title, _, _ := AnalyzeContent("   Q3 Engineering Report   \nbody")
		assert.Equal(t, "Q3 Engineering Report", title)
	})

	t.Run("69 characters kept", func(t *testing.T) {
		first := strings.Repeat("a", 69)
		title, _, _ := AnalyzeContent(first + "\nbody")
		assert.Equal(t, first, title)
	})

	t.Run("70 characters rejected", func(t *testing.T) {
		title, _, _ := AnalyzeContent(strings.Repeat("a", 70) + "\nbody")
		assert.Equal(t, UnknownTitle, title)
	})

	t.Run("blank first line yields default", func(t *testing.T) {
		title, _, _ := AnalyzeContent("\nActual content below")
		assert.Equal(t, UnknownTitle, title)
	})
}

func TestAnalyzeContent_Vendor(t *testing.T) {
	t.Run("vendor line parsed after first colon", func(t *testing.T) {
		_, vendor, _ := AnalyzeContent("Title\nVendor: Acme Corp\nbody")
		assert.Equal(t, "Acme Corp", vendor)
	})

	t.Run("marker match is case insensitive", func(t *testing.T) {
		_, vendor, _ := AnalyzeContent("Title\nVENDOR:   TurbineWorks GmbH\n")
		assert.Equal(t, "TurbineWorks GmbH", vendor)
	})

	t.Run("first vendor line wins", func(t *testing.T) {
		_, vendor, _ := AnalyzeContent("Vendor: First\nVendor: Second\n")
		assert.Equal(t, "First", vendor)
	})

	t.Run("line 10 is scanned", func(t *testing.T) {
		text := strings.Repeat("filler\n", 9) + "vendor: Edge Inc"
		_, vendor, _ := AnalyzeContent(text)
		assert.Equal(t, "Edge Inc", vendor)
	})

	t.Run("line 11 is ignored", func(t *testing.T) {
		text := strings.Repeat("filler\n", 10) + "vendor: Too Late Ltd"
		_, vendor, _ := AnalyzeContent(text)
		assert.Equal(t, UnknownVendor, vendor)
	})

	t.Run("no vendor line yields default", func(t *testing.T) {
		_, vendor, _ := AnalyzeContent("Title\nno supplier info here")
		assert.Equal(t, UnknownVendor, vendor)
	})
}

func TestAnalyzeContent_Category(t *testing.T) {
	tests := []struct {
		name string
		text string
		want core.Category
	}{
		{"technical keyword", "The technical drawings are attached", core.CategoryEngineering},
		{"construction keyword", "construction site plan", core.CategoryEngineering},
		{"financial keyword", "financial statement attached", core.CategoryFinancial},
		{"revenue keyword", "Revenue grew 12%", core.CategoryFinancial},
		{"legal keyword", "the legal department reviewed it", core.CategoryLegal},
		{"contract keyword", "signed the contract yesterday", core.CategoryLegal},
		{"safety keyword", "safety goggles are mandatory", core.CategorySafety},
		{"incident keyword", "incident report follows", core.CategorySafety},
		{"no keywords", "weekly status update", core.CategoryGeneral},
		{"keyword match is case insensitive", "TECHNICAL REVIEW", core.CategoryEngineering},
		{"keyword inside a larger word", "nontechnical staff", core.CategoryEngineering},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, category := AnalyzeContent(tt.text)
			assert.Equal(t, tt.want, category)
		})
	}
}

func TestAnalyzeContent_CategoryTableOrder(t *testing.T) {
	// Declaration order breaks ties: Engineering, Financial, Legal, Safety.
	t.Run("legal beats safety", func(t *testing.T) {
		_, _, category := AnalyzeContent("legal review of the safety procedures")
		assert.Equal(t, core.CategoryLegal, category)
	})

	t.Run("engineering beats everything", func(t *testing.T) {
		_, _, category := AnalyzeContent("technical financial legal safety")
		assert.Equal(t, core.CategoryEngineering, category)
	})

	t.Run("financial beats legal", func(t *testing.T) {
		_, _, category := AnalyzeContent("revenue from the contract")
		assert.Equal(t, core.CategoryFinancial, category)
	})
}

func TestAnalyzeContent_FullDocument(t *testing.T) {
	text := "Q3 Engineering Report\nVendor: TurbineWorks\n\ntechnical specifications for the turbine"
	title, vendor, category := AnalyzeContent(text)
	assert.Equal(t, "Q3 Engineering Report", title)
	assert.Equal(t, "TurbineWorks", vendor)
	assert.Equal(t, core.CategoryEngineering, category)
}
