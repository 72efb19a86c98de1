// Package schemas embeds the JSON schemas used to check submitted records.
package schemas

import _ "embed"

// RegistrationRecordV1Schema is the JSON schema for a submitted registration record.
//
//go:embed registration_record.v1.json
var RegistrationRecordV1Schema []byte
