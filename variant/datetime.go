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
	"time"
)

// Date is a calendar day in the proleptic Gregorian calendar, without a
// time zone. The zero value is 1970-01-01.
type Date struct {
	days int64 // since 1970-01-01
}

const secPerDay = 24 * 60 * 60

// DateOf returns the Date for the given year, month and day. Out of range
// values are normalised the way time.Date normalises them.
func DateOf(year int, month time.Month, day int) Date {
	return DateFromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateFromTime returns the calendar day of t in t's location.
func DateFromTime(t time.Time) Date {
	y, m, d := t.Date()
	u := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
	return Date{days: floorDiv(u, secPerDay)}
}

// DateFromDays returns the Date that is n days after 1970-01-01.
func DateFromDays(n int64) Date { return Date{days: n} }

// Days returns the number of days since 1970-01-01.
func (d Date) Days() int64 { return d.days }

// Time returns midnight UTC at the start of d.
func (d Date) Time() time.Time { return time.Unix(d.days*secPerDay, 0).UTC() }

// YearMonthDay returns the calendar components of d.
func (d Date) YearMonthDay() (int, time.Month, int) { return d.Time().Date() }

// Compare returns -1, 0 or +1 ordering d and o chronologically.
func (d Date) Compare(o Date) int {
	switch {
	case d.days < o.days:
		return -1
	case d.days > o.days:
		return 1
	}
	return 0
}

// String renders d as YYYY-MM-DD.
func (d Date) String() string {
	y, m, day := d.YearMonthDay()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), day)
}

// truncMillis truncates t to millisecond precision in UTC.
func truncMillis(t time.Time) time.Time {
	return time.UnixMilli(t.UnixMilli()).UTC()
}

func durationMillis(d time.Duration) int64 { return int64(d / time.Millisecond) }

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
