package catalog

// contentSchema defines the JSON schema the embedded content file must
// conform to. Structural cross-checks (dangling references, answer keys)
// are handled separately by validateCourses.
var contentSchema = map[string]any{
	"type":     "object",
	"required": []any{"courses"},
	"properties": map[string]any{
		"courses": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "title", "category", "lessons"},
				"properties": map[string]any{
					"id":          map[string]any{"type": "string", "minLength": 1},
					"title":       map[string]any{"type": "string", "minLength": 1},
					"description": map[string]any{"type": "string"},
					"category": map[string]any{
						"type": "string",
						"enum": []any{"programming", "data-science", "design"},
					},
					"price_cents": map[string]any{"type": "integer", "minimum": 0},
					"lessons": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type":     "object",
							"required": []any{"id", "title", "media_ref"},
							"properties": map[string]any{
								"id":            map[string]any{"type": "string", "minLength": 1},
								"title":         map[string]any{"type": "string", "minLength": 1},
								"media_ref":     map[string]any{"type": "string", "minLength": 1},
								"duration_mins": map[string]any{"type": "integer", "minimum": 0},
								"free":          map[string]any{"type": "boolean"},
							},
						},
					},
					"quiz": map[string]any{
						"type":     "object",
						"required": []any{"id", "title", "passing_score", "questions"},
						"properties": map[string]any{
							"id":                 map[string]any{"type": "string", "minLength": 1},
							"title":              map[string]any{"type": "string", "minLength": 1},
							"passing_score":      map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
							"time_limit_minutes": map[string]any{"type": "integer", "minimum": 0},
							"max_attempts":       map[string]any{"type": "integer", "minimum": 0},
							"questions": map[string]any{
								"type": "array",
								"items": map[string]any{
									"type":     "object",
									"required": []any{"id", "text", "points", "options", "answer_option_id"},
									"properties": map[string]any{
										"id":     map[string]any{"type": "string", "minLength": 1},
										"text":   map[string]any{"type": "string", "minLength": 1},
										"points": map[string]any{"type": "integer", "minimum": 1},
										"options": map[string]any{
											"type":     "array",
											"minItems": 2,
											"items": map[string]any{
												"type":     "object",
												"required": []any{"id", "text"},
												"properties": map[string]any{
													"id":   map[string]any{"type": "string", "minLength": 1},
													"text": map[string]any{"type": "string", "minLength": 1},
												},
											},
										},
										"answer_option_id": map[string]any{"type": "string", "minLength": 1},
									},
								},
							},
						},
					},
				},
			},
		},
	},
}
