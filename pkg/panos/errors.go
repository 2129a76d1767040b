/*
 * Copyright 2025 NetAPI Project Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package panos

import "fmt"

// ErrorKind classifies a failed exchange with the appliance.
type ErrorKind int

const (
	// KindInvalidCommand means the command path could not be encoded.
	KindInvalidCommand ErrorKind = iota
	// KindTransport covers network faults other than timeouts and refused connections.
	KindTransport
	// KindTimeout means the request exceeded the configured transport timeout.
	KindTimeout
	// KindConnectionFailed means the device could not be reached at all.
	KindConnectionFailed
	// KindParse means the reply body was not well-formed XML.
	KindParse
	// KindDevice means the device accepted the request and rejected it.
	KindDevice
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidCommand:
		return "invalid command"
	case KindTransport:
		return "transport error"
	case KindTimeout:
		return "timeout"
	case KindConnectionFailed:
		return "connection failed"
	case KindParse:
		return "parse error"
	case KindDevice:
		return "device error"
	default:
		return "unknown"
	}
}

// APIError is the only error type the client returns. Callers never see a
// raw transport fault; everything is folded into Kind plus a display message,
// with the attempted command retained for diagnostics.
type APIError struct {
	Kind    ErrorKind
	Code    string // vendor error code, set for KindDevice only
	Message string
	Command string
}

func (e *APIError) Error() string {
	if e.Kind == KindDevice && e.Code != "" {
		return fmt.Sprintf("%s: code %s (%s): %s", e.Kind, e.Code, CodeText(e.Code), e.Message)
	}

	if e.Command != "" {
		return fmt.Sprintf("%s: %s (command: %s)", e.Kind, e.Message, e.Command)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// vendorCodes is the fixed table of error codes the PAN-OS API documents.
var vendorCodes = map[string]string{
	"400": "Bad request",
	"403": "Forbidden",
	"1":   "Unknown command",
	"2":   "Internal error",
	"3":   "Internal error",
	"4":   "Internal error",
	"5":   "Internal error",
	"6":   "Bad Xpath",
	"7":   "Object not present",
	"8":   "Object not unique",
	"10":  "Reference count not zero",
	"11":  "Internal error",
	"12":  "Invalid object",
	"13":  "Object not found",
	"14":  "Operation not possible",
	"15":  "Operation denied",
	"16":  "Unauthorized",
	"17":  "Invalid command",
	"18":  "Malformed command",
	"19":  "Success",
	"20":  "Success",
	"21":  "Internal error",
	"22":  "Session timed out",
}

const unknownCodeText = "Unknown error code"

// CodeText maps a vendor error code to its documented meaning. Codes absent
// from the table are reported with a generic label rather than failing.
func CodeText(code string) string {
	if text, ok := vendorCodes[code]; ok {
		return text
	}

	return unknownCodeText
}
