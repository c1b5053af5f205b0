package betcup

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/easmith/betcup/internal/logger"
	"github.com/easmith/betcup/pkg/transport"
	"github.com/easmith/betcup/pkg/util"
)

// BetexplorerDatasource fetches championship results and fixtures from
// betexplorer result pages and turns them into Match and Team records
type BetexplorerDatasource struct {
	BaseURL string
	// Championships maps a championship id onto its site path, for
	// example "football/russia/premier-league"
	Championships map[int]string
	Teams         []*Team
	Matches       []*Match
}

var (
	datasourceInstance *BetexplorerDatasource
	datasourceOnce     sync.Once
)

// GetDatasourceInstance returns the singleton instance of the datasource
func GetDatasourceInstance() *BetexplorerDatasource {
	datasourceOnce.Do(func() {
		datasourceInstance = &BetexplorerDatasource{
			BaseURL:       "https://www.betexplorer.com",
			Championships: Config.ChampionshipPaths,
			Teams:         make([]*Team, 0),
			Matches:       make([]*Match, 0),
		}
	})
	return datasourceInstance
}

/////////////////////////////////////////////////////////////////////////
////// Persistence and Updating
/////////////////////////////////////////////////////////////////////////

// Update fetches every configured championship and persists what it finds
func (d *BetexplorerDatasource) Update() error {
	if err := InitDatabase(); err != nil {
		return fmt.Errorf("failed to initialise database: %w", err)
	}

	if err := os.MkdirAll(Config.CachePath, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	for _, championshipID := range Config.Championships {
		path, ok := d.Championships[championshipID]
		if !ok {
			logger.Warn("No site path configured for championship", championshipID)
			continue
		}
		logger.Info("Loading data for championship", championshipID, path)

		if err := d.loadChampionship(championshipID, path); err != nil {
			logger.Error("Failed to load championship", championshipID, err)
			continue
		}
	}

	if len(d.Matches) == 0 {
		return fmt.Errorf("no matches loaded from any championship")
	}

	items := make([]Persistable, 0, len(d.Teams)+len(d.Matches))
	for _, t := range d.Teams {
		items = append(items, t)
	}
	for _, m := range d.Matches {
		items = append(items, m)
	}
	if err := BulkSave(items); err != nil {
		return fmt.Errorf("failed to persist loaded data: %w", err)
	}

	logger.Highlight("Loaded", len(d.Matches), "matches and", len(d.Teams), "teams")
	return nil
}

// loadChampionship pulls the results and fixtures pages of one championship
func (d *BetexplorerDatasource) loadChampionship(championshipID int, path string) error {
	pages := map[string]bool{
		fmt.Sprintf("%s/%s/results/", d.BaseURL, path):  false,
		fmt.Sprintf("%s/%s/fixtures/", d.BaseURL, path): true,
	}
	for url, fixtures := range pages {
		html, err := d.get(url)
		if err != nil {
			// Fixture pages disappear once a season is over
			if fixtures {
				logger.Debug("No fixtures page for", path)
				continue
			}
			return err
		}
		matches, teams, err := d.ParseMatches(html, championshipID, fixtures)
		if err != nil {
			return err
		}
		d.Matches = append(d.Matches, matches...)
		d.mergeTeams(teams)
	}
	return nil
}

// get fetches a URL through the disk cache. Pages are cached forever, the
// cache directory has to be cleared to force a refetch
func (d *BetexplorerDatasource) get(url string) (string, error) {
	cacheFile := filepath.Join(Config.CachePath, cacheKey(url)+".html")

	if data, err := os.ReadFile(cacheFile); err == nil {
		logger.Debug("Cache hit for", url)
		return string(data), nil
	}

	body, err := transport.GetHtml(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	if err := os.WriteFile(cacheFile, body, 0644); err != nil {
		logger.Warn("Failed to write cache file", cacheFile, err)
	}
	return string(body), nil
}

// cacheKey flattens a URL into a safe filename
func cacheKey(url string) string {
	key := strings.TrimPrefix(url, "https://")
	key = strings.TrimPrefix(key, "http://")
	return strings.Trim(strings.NewReplacer("/", "_", "?", "_", "&", "_", "=", "_").Replace(key), "_")
}

// mergeTeams adds teams not yet seen, keyed by id
func (d *BetexplorerDatasource) mergeTeams(teams []*Team) {
	for _, t := range teams {
		known := false
		for _, existing := range d.Teams {
			if existing.ID == t.ID {
				known = true
				break
			}
		}
		if !known {
			d.Teams = append(d.Teams, t)
		}
	}
}

/////////////////////////////////////////////////////////////////////////
////// HTML parsing
/////////////////////////////////////////////////////////////////////////

var roundNumberPattern = regexp.MustCompile(`(\d+)\.?\s*Round|Round\s*(\d+)`)

// ParseRoundNumber extracts the round number from a round heading such as
// "5. Round" or "Round 5". Returns -1 when the heading carries no number
func ParseRoundNumber(roundName string) int {
	m := roundNumberPattern.FindStringSubmatch(roundName)
	if m == nil {
		return -1
	}
	digits := m[1]
	if digits == "" {
		digits = m[2]
	}
	n, err := util.GetAsInteger(digits)
	if err != nil {
		return -1
	}
	return n
}

// ParseScore splits a "2:1" score string. Both values are -1 when the text
// is not a final score
func ParseScore(text string) (home, away int) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) != 2 {
		return -1, -1
	}
	h, err1 := util.GetAsInteger(strings.TrimSpace(parts[0]))
	a, err2 := util.GetAsInteger(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return -1, -1
	}
	return h, a
}

// teamID slugifies a team name into a stable identifier
func teamID(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	return slug
}

// ParseMatches reads the match rows out of a results or fixtures page.
// Round headings apply to every row beneath them until the next heading
func (d *BetexplorerDatasource) ParseMatches(html string, championshipID int, fixtures bool) ([]*Match, []*Team, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse page: %w", err)
	}

	var matches []*Match
	var teams []*Team
	currentRound := ""

	doc.Find("table.table-main tr").Each(func(i int, row *goquery.Selection) {
		// Round headings sit in their own header rows
		if heading := row.Find("th").First(); heading.Length() > 0 {
			text := strings.TrimSpace(heading.Text())
			if text != "" {
				currentRound = text
			}
			return
		}

		link := row.Find("td.h-text-left a").First()
		if link.Length() == 0 {
			return
		}
		names := strings.Split(link.Text(), " - ")
		if len(names) != 2 {
			return
		}
		homeName := strings.TrimSpace(names[0])
		awayName := strings.TrimSpace(names[1])

		href, _ := link.Attr("href")
		matchID := matchIDFromHref(href)
		if matchID == "" {
			logger.Debug("Skipping row without match link", link.Text())
			return
		}

		m := NewMatch()
		m.ID = matchID
		m.ChampionshipID = championshipID
		m.IsFixture = fixtures
		m.MatchUrl = href
		m.HomeTeamName = homeName
		m.AwayTeamName = awayName
		m.HomeTeamID = teamID(homeName)
		m.AwayTeamID = teamID(awayName)
		m.RoundName = currentRound
		m.RoundNumber = ParseRoundNumber(currentRound)

		if !fixtures {
			m.HomeScore, m.AwayScore = ParseScore(row.Find("td.h-text-center a").First().Text())
		}

		odds := make([]float64, 0, 3)
		row.Find("td[data-odd]").Each(func(j int, cell *goquery.Selection) {
			if raw, ok := cell.Attr("data-odd"); ok {
				if v, err := util.GetAsFloat(raw); err == nil {
					odds = append(odds, v)
				}
			}
		})
		if len(odds) == 3 {
			m.OddsHome, m.OddsDraw, m.OddsAway = odds[0], odds[1], odds[2]
		}

		if dateText := strings.TrimSpace(row.Find("td.table-main__datetime").First().Text()); dateText != "" {
			if t, err := parseMatchDate(dateText); err == nil {
				m.GameDate = t
			} else {
				logger.Debug("Unparseable match date", dateText)
			}
		}

		matches = append(matches, m)

		homeTeam := NewTeam(m.HomeTeamID, homeName)
		homeTeam.ChampionshipID = championshipID
		awayTeam := NewTeam(m.AwayTeamID, awayName)
		awayTeam.ChampionshipID = championshipID
		teams = append(teams, homeTeam, awayTeam)
	})

	logger.Debug("Parsed", len(matches), "matches from page")
	return matches, teams, nil
}

var matchHrefPattern = regexp.MustCompile(`/([A-Za-z0-9]+)/?$`)

// matchIDFromHref pulls the site's match identifier out of a match link
func matchIDFromHref(href string) string {
	m := matchHrefPattern.FindStringSubmatch(strings.TrimSuffix(href, "/"))
	if m == nil {
		return ""
	}
	return m[1]
}

// parseMatchDate handles the date formats the site uses on result rows.
// Dates without a year belong to the current season
func parseMatchDate(text string) (time.Time, error) {
	layouts := []string{
		"02.01.2006 15:04",
		"02.01.2006",
		"02.01. 15:04",
		"02.01.",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, text); err == nil {
			if t.Year() == 0 {
				t = t.AddDate(time.Now().Year(), 0, 0)
			}
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date format: %s", text)
}
