package fivehundred

import (
	"encoding/json"
	"fmt"
)

// Variant is the column layout of a listing page.
type Variant int

const (
	VariantLive Variant = iota
	VariantHistory
	VariantFuture
)

func (v Variant) String() string {
	switch v {
	case VariantLive:
		return "live"
	case VariantHistory:
		return "history"
	case VariantFuture:
		return "future"
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// Side names which team of a fixture a record belongs to.
type Side int

const (
	SideHome Side = iota
	SideAway
)

func (s Side) String() string {
	if s == SideAway {
		return "away_team"
	}
	return "home_team"
}

func (s Side) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Venue is where the matches of a home/away form table were played.
type Venue int

const (
	VenueHome Venue = iota
	VenueAway
)

func (v Venue) String() string {
	if v == VenueAway {
		return "away"
	}
	return "home"
}

func (v Venue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

type MatchSummary struct {
	League        string `json:"league"`
	LeagueBgcolor string `json:"league_bgcolor"`
	Round         string `json:"round"`
	MatchTime     string `json:"match_time"`
	StatusText    string `json:"status_text"`
	Status        Status `json:"status"`
	Fid           string `json:"fid"`
	Sid           string `json:"sid"`
	JcMark        string `json:"jc_mark"`
	HomeTeam      string `json:"home_team"`
	HomeTeamId    string `json:"home_team_id"`
	HomeTeamLogo  string `json:"home_team_logo"`
	AwayTeam      string `json:"away_team"`
	AwayTeamId    string `json:"away_team_id"`
	AwayTeamLogo  string `json:"away_team_logo"`
	HomeScore     string `json:"home_score"`
	AwayScore     string `json:"away_score"`
	HalfScore     string `json:"half_score"`
}

type Player struct {
	Number   string `json:"number"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

type Lineup struct {
	StartingLineup []Player `json:"starting_lineup"`
	Substitutes    []Player `json:"substitutes"`
}

type MatchEvent struct {
	Time      string `json:"time"`
	HomeEvent string `json:"home_event"`
	AwayEvent string `json:"away_event"`
	HomeIcon  string `json:"home_icon"`
	AwayIcon  string `json:"away_icon"`
}

type TechStat struct {
	Label        string `json:"label"`
	HomeValue    string `json:"homeValue"`
	AwayValue    string `json:"awayValue"`
	HomeBarWidth string `json:"homeBarWidth"`
	AwayBarWidth string `json:"awayBarWidth"`
}

type MatchDetails struct {
	HomeTeam    Lineup       `json:"home_team"`
	AwayTeam    Lineup       `json:"away_team"`
	MatchEvents []MatchEvent `json:"match_events"`
	TechStats   []TechStat   `json:"tech_stats"`
}

type Players struct {
	HomeTeam Lineup `json:"home_team"`
	AwayTeam Lineup `json:"away_team"`
}

func (d MatchDetails) Players() Players {
	return Players{HomeTeam: d.HomeTeam, AwayTeam: d.AwayTeam}
}

func emptyDetails() MatchDetails {
	return MatchDetails{
		HomeTeam:    Lineup{StartingLineup: []Player{}, Substitutes: []Player{}},
		AwayTeam:    Lineup{StartingLineup: []Player{}, Substitutes: []Player{}},
		MatchEvents: []MatchEvent{},
		TechStats:   []TechStat{},
	}
}

// OddsLine is the opening and the latest triple of one bookmaker.
type OddsLine struct {
	Initial []string `json:"initial"`
	Instant []string `json:"instant"`
}

// OddsTable maps a bookmaker name to its odds.
type OddsTable map[string]OddsLine

type OddsBundle struct {
	Id     string    `json:"id"`
	Name   string    `json:"name"`
	Oupei  OddsTable `json:"oupei"`
	Yapan  OddsTable `json:"yapan"`
	Daxiao OddsTable `json:"daxiao"`
}

type GoalSplit struct {
	Total string `json:"total"`
	Home  string `json:"home"`
	Away  string `json:"away"`
}

type TeamAverage struct {
	Goals    GoalSplit `json:"goals"`
	Conceded GoalSplit `json:"conceded"`
}

type PieData struct {
	Sum          string `json:"sum"`
	Total        string `json:"total"`
	Win          string `json:"win"`
	Draw         string `json:"draw"`
	Lose         string `json:"lose"`
	GoalsFor     string `json:"goals_for"`
	GoalsAgainst string `json:"goals_against"`
}

type TeamAverageData struct {
	Name    string      `json:"name"`
	Average TeamAverage `json:"average"`
	PieData *PieData    `json:"pie_data"`
}

type AverageData struct {
	HomeTeam TeamAverageData `json:"home_team"`
	AwayTeam TeamAverageData `json:"away_team"`
}

type Matchup struct {
	HomeTeam string `json:"home_team"`
	Score    string `json:"score"`
	AwayTeam string `json:"away_team"`
}

type HistoryRecord struct {
	Event          string  `json:"event"`
	Date           string  `json:"date"`
	MatchInfo      Matchup `json:"match_info"`
	HalfScore      string  `json:"half_score"`
	Result         string  `json:"result"`
	Oupei          string  `json:"oupei"`
	Yapan          string  `json:"yapan"`
	HandicapResult string  `json:"handicap_result"`
	SizeResult     string  `json:"size_result"`
	Note           string  `json:"note"`
}

type HeadToHead struct {
	Title   string          `json:"title"`
	Stats   string          `json:"stats"`
	Matches []HistoryRecord `json:"matches"`
}

type FormRecord struct {
	Event          string  `json:"event"`
	Date           string  `json:"date"`
	MatchInfo      Matchup `json:"match_info"`
	Handicap       string  `json:"handicap"`
	HalfScore      string  `json:"half_score"`
	Result         string  `json:"result"`
	HandicapResult string  `json:"handicap_result"`
	SizeResult     string  `json:"size_result"`
}

type TeamForm struct {
	Name    string       `json:"name"`
	Stats   string       `json:"stats"`
	Matches []FormRecord `json:"matches"`
}

type HomeAwayForm struct {
	Type        Side         `json:"type"`
	Name        string       `json:"name"`
	CurrentType Venue        `json:"current_type"`
	Stats       string       `json:"stats"`
	Matches     []FormRecord `json:"matches"`
}

type StandingsEntry struct {
	Rank    string `json:"rank"`
	Name    string `json:"name"`
	Matches string `json:"matches"`
	Wins    string `json:"wins"`
	Draws   string `json:"draws"`
	Losses  string `json:"losses"`
	Points  string `json:"points"`
}

type Standings struct {
	Title string           `json:"title"`
	Teams []StandingsEntry `json:"teams"`
}

type LeagueAverage struct {
	HomeGoals string `json:"homeGoals"`
	AwayGoals string `json:"awayGoals"`
}
