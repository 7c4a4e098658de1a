// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package variant

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dateExpr     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockExpr    = regexp.MustCompile(`^(-)?(\d{2,}):(\d{2}):(\d{2})(?:\.(\d*))?$`)
	durationExpr = regexp.MustCompile(`^(-)?P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?(?:\.(\d+))?$`)
	dateTimeExpr = regexp.MustCompile(`^(.+)T(.+)$`)
)

func badCast(text, target string) error {
	return fmt.Errorf("%w: failed to interpret %q as %s", ErrParse, text, target)
}

func parseBool(s string) (bool, error) {
	switch s {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, badCast(s, "bool")
}

func parseSigned(s string, bitSize int) (int64, error) {
	i, err := strconv.ParseInt(s, 10, bitSize)
	if err != nil {
		return 0, badCast(s, fmt.Sprintf("int%d", bitSize))
	}
	return i, nil
}

func parseUnsigned(s string, bitSize int) (uint64, error) {
	u, err := strconv.ParseUint(s, 10, bitSize)
	if err != nil {
		return 0, badCast(s, fmt.Sprintf("uint%d", bitSize))
	}
	return u, nil
}

func parseFloat(s string, bitSize int) (float64, error) {
	switch s {
	case "NaN":
		return math.NaN(), nil
	case "INF":
		return math.Inf(1), nil
	case "-INF":
		return math.Inf(-1), nil
	}
	f, err := strconv.ParseFloat(s, bitSize)
	if err != nil {
		return 0, badCast(s, fmt.Sprintf("float%d", bitSize))
	}
	return f, nil
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}
	return strconv.FormatFloat(f, 'g', -1, bitSize)
}

func parseDate(s string) (Date, error) {
	if !dateExpr.MatchString(s) {
		return Date{}, badCast(s, "date, expecting YYYY-MM-DD")
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, badCast(s, "date, expecting YYYY-MM-DD")
	}
	return DateFromTime(t), nil
}

// parseTime accepts HH:MM:SS[.fff] or an ISO 8601 duration without year,
// month or fractional components.
func parseTime(s string) (time.Duration, error) {
	if m := clockExpr.FindStringSubmatch(s); m != nil {
		return parseClock(s, m)
	}

	m := durationExpr.FindStringSubmatch(s)
	if m == nil {
		return 0, badCast(s, "time, expecting HH:MM:SS[.fff] or P[n]Y[n]M[n]DT[n]H[n]M[n]S")
	}
	var fields [9]int64
	for i := 2; i < len(m); i++ {
		if m[i] == "" {
			continue
		}
		n, err := strconv.ParseInt(m[i], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: unable to interpret %q as duration, out of range", ErrParse, s)
		}
		fields[i] = n
	}
	if fields[2] != 0 || fields[3] != 0 {
		return 0, fmt.Errorf("%w: unable to interpret %q as duration, years or months > 0", ErrParse, s)
	}
	if fields[8] != 0 {
		return 0, fmt.Errorf("%w: unable to interpret %q as duration, fractional seconds > 0", ErrParse, s)
	}
	var d time.Duration
	ok := true
	for _, f := range [...]struct {
		n    int64
		unit time.Duration
	}{{fields[4], 24 * time.Hour}, {fields[5], time.Hour}, {fields[6], time.Minute}, {fields[7], time.Second}} {
		if d, ok = addUnits(d, f.n, f.unit); !ok {
			return 0, fmt.Errorf("%w: unable to interpret %q as duration, out of range", ErrParse, s)
		}
	}
	if m[1] != "" {
		d = -d
	}
	return d, nil
}

func parseClock(s string, m []string) (time.Duration, error) {
	h, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return 0, badCast(s, "time, hours out of range")
	}
	mins, _ := strconv.ParseInt(m[3], 10, 64)
	secs, _ := strconv.ParseInt(m[4], 10, 64)
	if mins > 59 || secs > 59 {
		return 0, badCast(s, "time, minutes and seconds must be below 60")
	}
	var ms int64
	if frac := m[5]; frac != "" {
		ms, _ = strconv.ParseInt((frac + "00")[:3], 10, 64)
	}
	d, ok := addUnits(0, h, time.Hour)
	if ok {
		d += time.Duration(mins)*time.Minute + time.Duration(secs)*time.Second + time.Duration(ms)*time.Millisecond
		ok = d >= 0
	}
	if !ok {
		return 0, badCast(s, "time, hours out of range")
	}
	if m[1] != "" {
		d = -d
	}
	return d, nil
}

// addUnits returns acc + n*unit for non-negative acc and n, reporting false
// when the sum does not fit in a Duration.
func addUnits(acc time.Duration, n int64, unit time.Duration) (time.Duration, bool) {
	if n > (math.MaxInt64-int64(acc))/int64(unit) {
		return 0, false
	}
	return acc + time.Duration(n)*unit, true
}

func parseDateTime(s string) (time.Time, error) {
	m := dateTimeExpr.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, badCast(s, "date/time, expecting YYYY-MM-DDTHH:MM:SS")
	}
	d, err := parseDate(m[1])
	if err != nil {
		return time.Time{}, err
	}
	t, err := parseTime(m[2])
	if err != nil {
		return time.Time{}, err
	}
	return d.Time().Add(t), nil
}

// formatTime renders d as [-]HH:MM:SS with a .fff suffix when d has a
// millisecond component.
func formatTime(d time.Duration) string {
	var sb strings.Builder
	if d < 0 {
		sb.WriteByte('-')
		d = -d
	}
	ms := int64(d / time.Millisecond)
	fmt.Fprintf(&sb, "%02d:%02d:%02d", ms/3600000, ms/60000%60, ms/1000%60)
	if frac := ms % 1000; frac != 0 {
		fmt.Fprintf(&sb, ".%03d", frac)
	}
	return sb.String()
}

func formatDateTime(t time.Time) string {
	t = t.UTC()
	day := DateFromTime(t)
	return day.String() + "T" + formatTime(t.Sub(day.Time()))
}
