package model

import (
	"encoding/json"
	"time"
)

// Date is a calendar date without a time component. It always uses the
// UTC timezone and the ISO-8601 date-only string form.
type Date struct {
	timeVal time.Time
}

func NewDate(t time.Time) Date {
	return Date{
		timeVal: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
	}
}

func NewDateFromString(t string) (Date, error) {
	ts, err := time.ParseInLocation(time.DateOnly, t, time.UTC)
	if err != nil {
		return Date{}, err
	}
	return Date{
		timeVal: ts,
	}, nil
}

func NewDateFromStringNoError(t string) Date {
	ts, err := time.ParseInLocation(time.DateOnly, t, time.UTC)
	if err != nil {
		panic(err)
	}
	return Date{
		timeVal: ts,
	}
}

func (dt Date) Unix() int64 {
	return dt.timeVal.Unix()
}

func (dt Date) GetTime() time.Time {
	return dt.timeVal
}

func (dt Date) IsZero() bool {
	return dt.timeVal.IsZero()
}

func (dt Date) String() string {
	return dt.timeVal.Format(time.DateOnly)
}

func (dt Date) MarshalJSON() ([]byte, error) {
	strVal := dt.timeVal.Format(time.DateOnly)
	return json.Marshal(strVal)
}

func (dt *Date) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	newDt, err := NewDateFromString(s)
	if err != nil {
		return err
	}
	*dt = newDt
	return nil
}
