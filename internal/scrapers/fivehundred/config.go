package fivehundred

import (
	"matchdata-backend/internal/fetch"
	"strings"
)

// URLs are the page templates, placeholders are {id}, {sid}, {date} and {team_id}.
type URLs struct {
	Live          string `json:"live"`
	Dated         string `json:"dated"`
	MarketIndex   string `json:"market_index"`
	Detail        string `json:"detail"`
	European      string `json:"european"`
	AsianHandicap string `json:"asian_handicap"`
	OverUnder     string `json:"over_under"`
	MatchData     string `json:"match_data"`
	League        string `json:"league"`
	TeamLogo      string `json:"team_logo"`
}

type Config struct {
	Fetch fetch.Options `json:"fetch"`
	URLs  URLs          `json:"urls"`
	// StatusText maps a status label shown on listing pages to its status code.
	StatusText map[string]string `json:"status_text"`
}

func DefaultURLs() URLs {
	return URLs{
		Live:          "https://live.500.com/2h1.php",
		Dated:         "https://live.500.com/wanchang.php?e={date}",
		MarketIndex:   "https://live.500.com/",
		Detail:        "https://live.500.com/detail.php?fid={id}",
		European:      "https://odds.500.com/fenxi/ouzhi-{id}.shtml",
		AsianHandicap: "https://odds.500.com/fenxi/yazhi-{id}.shtml",
		OverUnder:     "https://odds.500.com/fenxi/daxiao-{id}.shtml",
		MatchData:     "https://odds.500.com/fenxi/shuju-{id}.shtml",
		League:        "https://liansai.500.com/zuqiu-{sid}/",
		TeamLogo:      "https://odds.500.com/static/soccerdata/images/TeamPic/teamsignnew_{team_id}.png",
	}
}

func DefaultStatusText() map[string]string {
	return map[string]string{
		"未开始":   "0",
		"上半场":   "1",
		"中场结束":  "2",
		"下半场":   "3",
		"已结束":   "4",
		"完":     "4",
		"改期":    "6",
		"待定":    "9",
		"加时赛开始": "10",
	}
}

func DefaultConfig() Config {
	return Config{
		Fetch:      fetch.DefaultOptions(),
		URLs:       DefaultURLs(),
		StatusText: DefaultStatusText(),
	}
}

// withDefaults fills every empty url template and a missing status table.
func (c Config) withDefaults() Config {
	def := DefaultURLs()
	fill := func(field *string, value string) {
		if *field == "" {
			*field = value
		}
	}
	fill(&c.URLs.Live, def.Live)
	fill(&c.URLs.Dated, def.Dated)
	fill(&c.URLs.MarketIndex, def.MarketIndex)
	fill(&c.URLs.Detail, def.Detail)
	fill(&c.URLs.European, def.European)
	fill(&c.URLs.AsianHandicap, def.AsianHandicap)
	fill(&c.URLs.OverUnder, def.OverUnder)
	fill(&c.URLs.MatchData, def.MatchData)
	fill(&c.URLs.League, def.League)
	fill(&c.URLs.TeamLogo, def.TeamLogo)
	if len(c.StatusText) == 0 {
		c.StatusText = DefaultStatusText()
	}
	return c
}

func expand(template, key, value string) string {
	return strings.ReplaceAll(template, "{"+key+"}", value)
}
