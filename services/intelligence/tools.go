package intelligence

import (
	genai "github.com/google/generative-ai-go/genai"
)

// assistantTool declares the three callable operations exposed to the model.
var assistantTool = &genai.Tool{
	FunctionDeclarations: []*genai.FunctionDeclaration{
		{
			Name:        "book_event",
			Description: "Book a new meeting",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"email":  {Type: genai.TypeString, Description: "User's email address"},
					"date":   {Type: genai.TypeString, Description: "Meeting date in YYYY-MM-DD format"},
					"time":   {Type: genai.TypeString, Description: "Meeting time in HH:MM format"},
					"reason": {Type: genai.TypeString, Description: "Meeting purpose"},
				},
				Required: []string{"email", "date", "time", "reason"},
			},
		},
		{
			Name:        "list_events",
			Description: "List user's scheduled events",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"email": {Type: genai.TypeString, Description: "User's email address"},
				},
				Required: []string{"email"},
			},
		},
		{
			Name:        "cancel_event",
			Description: "Cancel a scheduled meeting",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"email": {Type: genai.TypeString, Description: "User's email address"},
					"date":  {Type: genai.TypeString, Description: "Meeting date in YYYY-MM-DD format"},
					"time":  {Type: genai.TypeString, Description: "Meeting time in HH:MM format"},
				},
				Required: []string{"email", "date", "time"},
			},
		},
	},
}
