package fivehundred

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	testCases := []struct {
		text     string
		expected Status
	}{
		{text: "上半场", expected: StatusFirstHalf},
		{text: " first half ", expected: StatusFirstHalf},
		{text: "First Half", expected: StatusFirstHalf},
		{text: "未开始", expected: StatusNotStarted},
		{text: "中场结束", expected: StatusHalfTime},
		{text: "完", expected: StatusFinished},
		{text: "已结束", expected: StatusFinished},
		{text: "改期", expected: StatusPostponed},
		{text: "待定", expected: StatusPending},
		{text: "加时赛开始", expected: StatusExtraTime},
		{text: "10", expected: StatusExtraTime},
		{text: "4", expected: StatusFinished},
		{text: "5", expected: StatusUnknown},
		{text: "腰斩", expected: StatusUnknown},
		{text: "", expected: StatusUnknown},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, ParseStatus(test.text), "text %q", test.text)
	}
	require.Equal(t, "", ParseStatus("???").Code())
	require.Equal(t, "1", ParseStatus("上半场").Code())
}

func TestResolveStatus(t *testing.T) {
	table := DefaultStatusText()
	require.Equal(t, StatusSecondHalf, resolveStatus(table, "3", "上半场"))
	require.Equal(t, StatusFirstHalf, resolveStatus(table, "", "上半场"))
	require.Equal(t, StatusFinished, resolveStatus(table, "7", "完"))
	require.Equal(t, StatusUnknown, resolveStatus(table, "", ""))
}

func TestStatusJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A Status `json:"a"`
		B Status `json:"b"`
	}{A: StatusExtraTime, B: StatusUnknown})
	if err != nil {
		t.Fatal(err)
	}
	require.JSONEq(t, `{"a":"10","b":""}`, string(out))

	var decoded struct {
		A Status `json:"a"`
		B Status `json:"b"`
	}
	err = json.Unmarshal(out, &decoded)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, StatusExtraTime, decoded.A)
	require.Equal(t, StatusUnknown, decoded.B)

	var bad Status
	require.Error(t, json.Unmarshal([]byte(`"5"`), &bad))
}
