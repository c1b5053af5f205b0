package betcup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundNumber(t *testing.T) {
	assert.Equal(t, 5, ParseRoundNumber("5. Round"))
	assert.Equal(t, 12, ParseRoundNumber("Round 12"))
	assert.Equal(t, -1, ParseRoundNumber("Final"))
	assert.Equal(t, -1, ParseRoundNumber(""))
}

func TestParseScore(t *testing.T) {
	h, a := ParseScore("2:1")
	assert.Equal(t, 2, h)
	assert.Equal(t, 1, a)

	h, a = ParseScore(" 0:0 ")
	assert.Equal(t, 0, h)
	assert.Equal(t, 0, a)

	h, a = ParseScore("POSTP.")
	assert.Equal(t, -1, h)
	assert.Equal(t, -1, a)

	h, a = ParseScore("")
	assert.Equal(t, -1, h)
	assert.Equal(t, -1, a)
}

func TestMatchIDFromHref(t *testing.T) {
	assert.Equal(t, "Ab3dEfGh", matchIDFromHref("/football/russia/premier-league/zenit-spartak/Ab3dEfGh/"))
	assert.Equal(t, "Ab3dEfGh", matchIDFromHref("/football/russia/premier-league/zenit-spartak/Ab3dEfGh"))
	assert.Equal(t, "", matchIDFromHref(""))
}

const resultsPageSnippet = `
<html><body>
<table class="table-main">
  <tr><th colspan="6">5. Round</th></tr>
  <tr>
    <td class="h-text-left"><a href="/football/russia/premier-league/zenit-spartak/Ab3dEfGh/">Zenit - Spartak</a></td>
    <td class="h-text-center"><a href="/football/russia/premier-league/zenit-spartak/Ab3dEfGh/">2:1</a></td>
    <td class="table-main__odds" data-odd="1.55"></td>
    <td data-odd="4.20"></td>
    <td data-odd="6.05"></td>
    <td class="table-main__datetime">16.08.2025 18:00</td>
  </tr>
  <tr><th colspan="6">4. Round</th></tr>
  <tr>
    <td class="h-text-left"><a href="/football/russia/premier-league/cska-dynamo/Xy9zAbCd/">CSKA - Dynamo</a></td>
    <td class="h-text-center"><a href="/football/russia/premier-league/cska-dynamo/Xy9zAbCd/">0:0</a></td>
    <td class="table-main__datetime">09.08.2025 16:30</td>
  </tr>
</table>
</body></html>`

func TestParseMatches(t *testing.T) {
	d := &BetexplorerDatasource{BaseURL: "https://www.betexplorer.com"}
	matches, teams, err := d.ParseMatches(resultsPageSnippet, 11202, false)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Len(t, teams, 4)

	m := matches[0]
	assert.Equal(t, "Ab3dEfGh", m.ID)
	assert.Equal(t, 11202, m.ChampionshipID)
	assert.Equal(t, "Zenit", m.HomeTeamName)
	assert.Equal(t, "Spartak", m.AwayTeamName)
	assert.Equal(t, "zenit", m.HomeTeamID)
	assert.Equal(t, "spartak", m.AwayTeamID)
	assert.Equal(t, "5. Round", m.RoundName)
	assert.Equal(t, 5, m.RoundNumber)
	assert.Equal(t, 2, m.HomeScore)
	assert.Equal(t, 1, m.AwayScore)
	assert.True(t, m.HasResult())
	assert.True(t, m.HasOdds())
	assert.Equal(t, 1.55, m.OddsHome)
	assert.Equal(t, 4.20, m.OddsDraw)
	assert.Equal(t, 6.05, m.OddsAway)
	assert.Equal(t, 2025, m.GameDate.Year())
	assert.False(t, m.IsFixture)

	// rows without odds keep the sentinel and rows under a later heading
	// pick up that round
	m2 := matches[1]
	assert.Equal(t, 4, m2.RoundNumber)
	assert.False(t, m2.HasOdds())
	assert.Equal(t, -1.0, m2.OddsHome)
}

func TestParseMatchesFixtures(t *testing.T) {
	snippet := `
<table class="table-main">
  <tr><th>6. Round</th></tr>
  <tr>
    <td class="h-text-left"><a href="/football/russia/premier-league/krasnodar-rostov/Qq1wEe2R/">Krasnodar - Rostov</a></td>
    <td data-odd="1.80"></td>
    <td data-odd="3.60"></td>
    <td data-odd="4.50"></td>
  </tr>
</table>`
	d := &BetexplorerDatasource{}
	matches, _, err := d.ParseMatches(snippet, 11202, true)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.True(t, m.IsFixture)
	assert.False(t, m.HasResult())
	assert.True(t, m.HasOdds())
	assert.Equal(t, 6, m.RoundNumber)
}

func TestMatchOutcomeHelpers(t *testing.T) {
	m := testMatch("m1", 1, "a", "b", 2, 1)
	assert.Equal(t, OutcomeWin, m.Outcome())
	assert.Equal(t, OutcomeDefeat, m.OutcomeFor("b"))
	scored, conceded := m.GoalsFor("b")
	assert.Equal(t, 1, scored)
	assert.Equal(t, 2, conceded)
	assert.Equal(t, "2:1", m.ScoreStr())
	assert.True(t, m.Involves("a"))
	assert.False(t, m.Involves("c"))

	fixture := testMatch("m2", 2, "a", "b", -1, -1)
	assert.Equal(t, OutcomeUnknown, fixture.Outcome())
	assert.Equal(t, "", fixture.ScoreStr())
}

func TestSortMatchesChronologically(t *testing.T) {
	m1 := testMatch("m1", 3, "a", "b", 1, 0)
	m2 := testMatch("m2", 1, "b", "a", 0, 0)
	m3 := testMatch("m3", 2, "a", "b", 2, 2)
	matches := []*Match{m1, m2, m3}

	SortMatchesChronologically(matches)
	assert.Equal(t, "m2", matches[0].ID)
	assert.Equal(t, "m3", matches[1].ID)
	assert.Equal(t, "m1", matches[2].ID)
	assert.Equal(t, 3, MaxRoundNumber(matches))
}
