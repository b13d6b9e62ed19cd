package fivehundred

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Status is the canonical match status. It serializes as its site code ("0".."10"),
// StatusUnknown serializes as "".
type Status int

const (
	StatusUnknown    Status = -1
	StatusNotStarted Status = 0
	StatusFirstHalf  Status = 1
	StatusHalfTime   Status = 2
	StatusSecondHalf Status = 3
	StatusFinished   Status = 4
	StatusPostponed  Status = 6
	StatusPending    Status = 9
	StatusExtraTime  Status = 10
)

var statusLabels = map[Status]string{
	StatusNotStarted: "not started",
	StatusFirstHalf:  "first half",
	StatusHalfTime:   "half-time",
	StatusSecondHalf: "second half",
	StatusFinished:   "finished",
	StatusPostponed:  "postponed",
	StatusPending:    "pending",
	StatusExtraTime:  "extra time",
}

func (s Status) String() string {
	label, ok := statusLabels[s]
	if !ok {
		return "unknown"
	}
	return label
}

// Code is the site code of the status, "" when unknown.
func (s Status) Code() string {
	if _, ok := statusLabels[s]; !ok {
		return ""
	}
	return strconv.Itoa(int(s))
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Code())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var code string
	err := json.Unmarshal(data, &code)
	if err != nil {
		return err
	}
	if code == "" {
		*s = StatusUnknown
		return nil
	}
	parsed, ok := StatusFromCode(code)
	if !ok {
		return fmt.Errorf("unknown status code %q", code)
	}
	*s = parsed
	return nil
}

// StatusFromCode converts a site code, it fails for anything outside the canonical table.
func StatusFromCode(code string) (Status, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil {
		return StatusUnknown, false
	}
	status := Status(n)
	if _, ok := statusLabels[status]; !ok {
		return StatusUnknown, false
	}
	return status, true
}

// ParseStatus maps a status marker (site code, chinese label or english label) with the
// default status table.
func ParseStatus(text string) Status {
	return parseStatusWith(DefaultStatusText(), text)
}

func parseStatusWith(table map[string]string, text string) Status {
	text = strings.TrimSpace(text)
	if text == "" {
		return StatusUnknown
	}
	if status, ok := StatusFromCode(text); ok {
		return status
	}
	if code, ok := table[text]; ok {
		if status, ok := StatusFromCode(code); ok {
			return status
		}
	}
	lower := strings.ToLower(text)
	for status, label := range statusLabels {
		if lower == label {
			return status
		}
	}
	switch lower {
	case "halftime", "half time", "ht":
		return StatusHalfTime
	case "ft", "full time", "ended":
		return StatusFinished
	}
	return StatusUnknown
}

// resolveStatus prefers the status attribute of a row when it is a canonical code
// and falls back to the status text otherwise.
func resolveStatus(table map[string]string, attr, text string) Status {
	if status, ok := StatusFromCode(attr); ok {
		return status
	}
	return parseStatusWith(table, text)
}
