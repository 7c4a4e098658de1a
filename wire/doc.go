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

// Package wire implements the binary encoding of variants.
//
// A message is a 12 byte header followed by a body. The header is three
// little-endian uint32 words:
//
//	[0] magic   0x484913FF
//	[1] version major<<16 | minor
//	[2] mode    flags, see Mode
//
// The body is a single tagged value: the variant kind as a uint32 followed
// by the encoding of its payload. Every raw field is followed by zero bytes
// up to the next multiple of four bytes, so all fields start 4-byte aligned
// relative to the start of the body.
//
//	None                nothing
//	Boolean             int32 0 or 1
//	Int32, UInt32       4 bytes
//	Int64, UInt64       8 bytes
//	Float, Double       IEEE 754, 4 and 8 bytes
//	String, Any         uint32 length, bytes
//	Buffer              uint32 length, bytes
//	Date                uint32 days since 1400-01-01
//	Time                int64 milliseconds
//	DateTime            int64 milliseconds since 1400-01-01T00:00:00
//	List, Tuple         uint32 count, tagged values
//	Dictionary, Bag     uint32 count, (string key, tagged value) pairs
//	TimeSeries          uint32 count, (DateTime, tagged value) pairs
//	Exception           type, message, source and stack strings
//	Object              class name string, int32 version, tagged params
//
// Writers always set ModeDateTimeAsTicks. Streams without it carry the
// legacy packed temporal encoding: Date as {uint16 year, uint8 month,
// uint8 day}, Time as {uint8 hour, uint8 minute, uint8 second, uint8 0} and
// DateTime as a Date followed by a Time.
//
// When ModeCompress is set the body is passed through the streaming codec
// selected by bits 8 through 11 of the mode word.
package wire
