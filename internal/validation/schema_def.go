package validation

// resultSchemaJSON is the JSON Schema for scored result bundles. It
// pins the shape the compare and plan commands rely on; extra fields
// pass through so older binaries can read newer bundles.
const resultSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["system_id", "timestamp", "runs", "components", "composites"],
  "properties": {
    "system_id": {"type": "string", "minLength": 1},
    "timestamp": {"type": "string"},
    "runs": {"type": "integer", "minimum": 1},
    "overall_score": {"type": "number", "minimum": 0, "maximum": 100},
    "samples": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["system_id", "component", "metric", "value", "run_index"],
        "properties": {
          "system_id": {"type": "string"},
          "component": {"enum": ["cpu", "memory", "disk", "network"]},
          "metric": {"type": "string", "minLength": 1},
          "value": {"type": "number"},
          "run_index": {"type": "integer", "minimum": 0}
        }
      }
    },
    "components": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["component", "stats", "category"],
        "properties": {
          "component": {"enum": ["cpu", "memory", "disk", "network"]},
          "stats": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["metric", "mean", "sample_count"],
              "properties": {
                "metric": {"type": "string", "minLength": 1},
                "mean": {"type": "number"},
                "sample_count": {"type": "integer", "minimum": 1}
              }
            }
          },
          "category": {
            "type": "object",
            "required": ["system_id", "component", "score"],
            "properties": {
              "score": {"type": "number", "minimum": 0, "maximum": 100}
            }
          }
        }
      }
    },
    "composites": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["system_id", "workload", "score"],
        "properties": {
          "system_id": {"type": "string"},
          "workload": {"type": "string", "minLength": 1},
          "score": {"type": "number", "minimum": 0, "maximum": 100}
        }
      }
    }
  }
}`
