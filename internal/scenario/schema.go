package scenario

// ContentSchema defines the JSON schema for scenario content files. The
// loader rejects files that don't conform before any Go-level validation
// runs.
var ContentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"scenarios": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    scenarioSchema,
		},
	},
	"required":             []any{"scenarios"},
	"additionalProperties": false,
}

var scenarioSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{"type": "integer", "minimum": 1},
		"category": map[string]any{
			"type": "string",
			"enum": []any{"wallet", "defi", "nft", "layer2", "social", "stablecoin", "mev"},
		},
		"difficulty": map[string]any{
			"type": "string",
			"enum": []any{"easy", "medium", "hard"},
		},
		"kind": map[string]any{
			"type": "string",
			"enum": []any{"email", "website", "transaction", "chat"},
		},
		"title": map[string]any{"type": "string", "minLength": 1},
		"email": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"from":    map[string]any{"type": "string"},
				"to":      map[string]any{"type": "string"},
				"subject": map[string]any{"type": "string"},
				"body":    map[string]any{"type": "string"},
			},
			"required": []any{"from", "subject", "body"},
		},
		"website": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"url": map[string]any{"type": "string"},
				"content": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"url"},
		},
		"transaction": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"to":              map[string]any{"type": "string"},
				"fields":          txFieldsSchema,
				"decodedFunction": map[string]any{"type": "string"},
				"decodedParams":   txFieldsSchema,
			},
			"required": []any{"fields"},
		},
		"chat": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"messages": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"from": map[string]any{"type": "string"},
							"sent": map[string]any{"type": "boolean"},
							"text": map[string]any{"type": "string"},
							"time": map[string]any{"type": "string"},
						},
						"required": []any{"text"},
					},
				},
			},
			"required": []any{"messages"},
		},
		"question": map[string]any{"type": "string", "minLength": 1},
		"options": map[string]any{
			"type":     "array",
			"minItems": 2,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "string", "minLength": 1},
					"text": map[string]any{"type": "string", "minLength": 1},
				},
				"required": []any{"id", "text"},
			},
		},
		"correctOption": map[string]any{"type": "string", "minLength": 1},
		"tools": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "string",
				"enum": []any{
					"url_scanner", "contract_analyzer", "gas_tracker",
					"address_lookup", "transaction_tracer", "token_scanner",
				},
			},
		},
		"feedback": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"correct":    map[string]any{"type": "string", "minLength": 1},
				"incorrect":  map[string]any{"type": "string", "minLength": 1},
				"xpReward":   map[string]any{"type": "integer", "minimum": 1},
				"redFlags":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"chainNotes": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
			"required": []any{"correct", "incorrect", "xpReward"},
		},
	},
	"required": []any{
		"id", "category", "difficulty", "kind", "title",
		"question", "options", "correctOption", "feedback",
	},
}

var txFieldsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"label": map[string]any{"type": "string"},
			"value": map[string]any{"type": "string"},
		},
		"required": []any{"label", "value"},
	},
}
