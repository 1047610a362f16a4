package gateway

import (
	"talentreq-client/internal/common/errors"
	"talentreq-client/internal/common/validation"
)

// Schemas are loose about optional fields, since the backend is inconsistent
// there and the transform layer owns the defaults. Identity fields and the
// list-or-string union are strict, so shape drift fails loudly at the
// boundary instead of deep in the UI.

const rawJobSchema = `{
  "type": "object",
  "required": ["requisition_id", "title"],
  "properties": {
    "name": {"type": "string"},
    "company": {"type": "string"},
    "requisition_id": {"type": "string"},
    "title": {"type": "string"},
    "description": {"type": "string"},
    "addresses": {"type": "array", "items": {"type": "string"}},
    "application_info": {
      "type": "object",
      "properties": {
        "uris": {"type": "array", "items": {"type": "string"}}
      }
    },
    "custom_attributes": {
      "type": "object",
      "properties": {
        "experience_level": {"type": "array", "items": {"type": "string"}},
        "responsibilities": {
          "anyOf": [
            {"type": "string"},
            {"type": "array", "items": {"type": "string"}}
          ]
        },
        "preferred_qualifications": {
          "anyOf": [
            {"type": "string"},
            {"type": "array", "items": {"type": "string"}}
          ]
        },
        "minimum_qualifications": {
          "anyOf": [
            {"type": "string"},
            {"type": "array", "items": {"type": "string"}}
          ]
        }
      }
    },
    "company_display_name": {"type": "string"},
    "posting_publish_time": {"type": "number"},
    "posting_expire_time": {"type": "number"}
  }
}`

const jobListSchema = `{
  "type": "array",
  "items": ` + rawJobSchema + `
}`

const talentResponseSchema = `{
  "type": "object",
  "required": ["jobDesc", "session_id"],
  "properties": {
    "jobDesc": ` + rawJobSchema + `,
    "session_id": {"type": "string"},
    "talents": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "employee_id": {"type": "number"},
          "employee_name": {"type": "string"},
          "match_score": {"type": "number"}
        }
      }
    }
  }
}`

const loginResponseSchema = `{
  "type": "object",
  "required": ["access_token"],
  "properties": {
    "access_token": {"type": "string", "minLength": 1}
  }
}`

const chatResponseSchema = `{
  "type": "object",
  "required": ["response"],
  "properties": {
    "response": {"type": "string"}
  }
}`

// validatePayload wraps schema validation into the gateway's typed failure.
func validatePayload(op string, body []byte, schema string) error {
	result, err := validation.ValidateJSON(body, schema)
	if err != nil {
		return errors.NewDeserializationError(op, err)
	}
	if !result.Valid {
		return errors.NewPayloadInvalidError(op, result.Violations())
	}
	return nil
}
