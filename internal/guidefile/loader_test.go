package guidefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"form-pricing/pkg/guide"
)

const guideYAML = `
base_price: 120
base_callout_fee: 30
currency: USD
estimate_mode: range
show_to_customer: true
min_price: 100
disclaimer: subject to inspection
rules:
  - id: rule-1
    name: Weekend callout
    enabled: true
    order: 1
    condition:
      question_id: weekend
      operator: equals
      value: true
    action:
      type: add
      value: 40
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadGuideYAML(t *testing.T) {
	rq := require.New(t)

	g, err := LoadGuide(writeFile(t, "guide.yaml", guideYAML))
	rq.NoError(err)

	rq.Equal(120.0, *g.BasePrice)
	rq.Equal(30.0, *g.BaseCalloutFee)
	rq.Equal(guide.ModeRange, g.EstimateMode)
	rq.Equal(100.0, *g.MinPrice)
	rq.Nil(g.MaxPrice)
	rq.Len(g.Rules, 1)
	rq.Equal(guide.AmountAdjustment(40), g.Rules[0].Action.Value)
}

func TestLoadAnswersJSON(t *testing.T) {
	rq := require.New(t)

	answers, err := LoadAnswers(writeFile(t, "answers.json",
		`{"weekend": true, "bedrooms": 4, "extras": ["deck", "fence"]}`))
	rq.NoError(err)

	rq.Equal(guide.BoolValue(true), answers["weekend"])
	rq.Equal(guide.NumberValue(4), answers["bedrooms"])
	rq.Equal(guide.StringList("deck", "fence"), answers["extras"])
}

func TestLoadRulesMissingFile(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
