package mcp

func (s *Server) listTools() interface{} {
	return map[string]interface{}{
		"tools": []interface{}{
			map[string]interface{}{
				"name":        "list_estimators",
				"description": "List the estimators in the store with their task and event counts.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
			map[string]interface{}{
				"name":        "get_velocity_stats",
				"description": "Calculate velocity statistics (n, min, max, mean, stddev) for an estimator's completed tasks.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"estimator":    map[string]interface{}{"type": "string", "description": "Name of the estimator"},
						"max_age_days": map[string]interface{}{"type": "integer", "description": "Optional: only use estimates at most this many days old"},
					},
					"required": []string{"estimator"},
				},
			},
			map[string]interface{}{
				"name":        "run_projection",
				"description": "Run a Monte-Carlo simulation projecting ship dates for pending work and return the percentile table. Estimators without estimation history are reported as skipped.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"estimator":    map[string]interface{}{"type": "string", "description": "Optional: limit to one estimator (default: all)"},
						"exponent":     map[string]interface{}{"type": "integer", "description": "Run 10^N simulation rounds (minimum 2)"},
						"priority":     map[string]interface{}{"type": "integer", "description": "Optional: exclude pending tasks with a priority greater than this"},
						"max_age_days": map[string]interface{}{"type": "integer", "description": "Optional: only use estimates at most this many days old"},
					},
				},
			},
		},
	}
}
