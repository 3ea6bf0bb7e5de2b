package docs

// Minimal OpenAPI 3.0 document model, just wide enough for this API.

type Document struct {
	OpenAPI    string      `json:"openapi"`
	Info       Info        `json:"info"`
	Paths      *OrderedMap `json:"paths"`
	Components *Components `json:"components,omitempty"`
}

type Info struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Version     string   `json:"version"`
	Contact     Contact  `json:"contact"`
	Servers     []string `json:"servers"`
}

type Contact struct {
	Name string `json:"name"`
}

type Components struct {
	Schemas *OrderedMap `json:"schemas"`
}

type PathItem struct {
	Get   *Operation `json:"get,omitempty"`
	Post  *Operation `json:"post,omitempty"`
	Patch *Operation `json:"patch,omitempty"`
}

type Operation struct {
	Summary     string              `json:"summary,omitempty"`
	Description string              `json:"description,omitempty"`
	Parameters  []Parameter         `json:"parameters,omitempty"`
	RequestBody *RequestBody        `json:"requestBody,omitempty"`
	Responses   map[string]Response `json:"responses"`
}

type Parameter struct {
	Name        string  `json:"name"`
	In          string  `json:"in"`
	Required    bool    `json:"required"`
	Description string  `json:"description,omitempty"`
	Schema      *Schema `json:"schema,omitempty"`
}

type RequestBody struct {
	Description string               `json:"description,omitempty"`
	Required    bool                 `json:"required,omitempty"`
	Content     map[string]MediaType `json:"content"`
}

type Response struct {
	Description string               `json:"description"`
	Content     map[string]MediaType `json:"content,omitempty"`
}

type MediaType struct {
	Schema *Schema `json:"schema,omitempty"`
}

type Schema struct {
	Ref        string             `json:"$ref,omitempty"`
	Type       string             `json:"type,omitempty"`
	Format     string             `json:"format,omitempty"`
	Example    any                `json:"example,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`
}

func jsonContent(schema *Schema) map[string]MediaType {
	return map[string]MediaType{
		"application/json": {Schema: schema},
	}
}

func intParam(name, in, description string, required bool, example int) Parameter {
	return Parameter{
		Name:        name,
		In:          in,
		Required:    required,
		Description: description,
		Schema:      &Schema{Type: "integer", Example: example},
	}
}

func stringParam(name, in, description string, example string) Parameter {
	return Parameter{
		Name:        name,
		In:          in,
		Required:    false,
		Description: description,
		Schema:      &Schema{Type: "string", Example: example},
	}
}

// staticDocument is the hand-authored half of the artifact: everything
// except components.schemas, which the introspector fills in.
func staticDocument() *Document {
	applicationItem := &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"leave_start_date": {Type: "string", Format: "date", Example: "2024-11-01"},
			"leave_end_date":   {Type: "string", Format: "date", Example: "2024-11-10"},
			"employeeId":       {Type: "integer", Example: 2},
		},
	}

	paths := NewOrderedMap()

	paths.Set("/benefits", PathItem{
		Get: &Operation{
			Summary: "Fetch benefits",
			Responses: map[string]Response{
				"200": {
					Description: "Returns a list of Benefits.",
					Content: jsonContent(&Schema{
						Type:  "array",
						Items: &Schema{Ref: "#/components/schemas/Benefit"},
					}),
				},
			},
		},
	})

	paths.Set("/employees/{id}", PathItem{
		Get: &Operation{
			Summary: "Fetch an employee by id",
			Parameters: []Parameter{
				intParam("id", "path", "The unique identifier of the employee.", true, 123),
			},
			Responses: map[string]Response{
				"200": {
					Description: "Returns the employee without the secret field.",
					Content:     jsonContent(&Schema{Ref: "#/components/schemas/Employee"}),
				},
				"404": {Description: "Employee not found."},
			},
		},
		Patch: &Operation{
			Summary: "Update employee details",
			Parameters: []Parameter{
				intParam("id", "path", "The unique identifier of the employee.", true, 123),
			},
			RequestBody: &RequestBody{
				Description: "First and last name to update",
				Required:    true,
				Content: jsonContent(&Schema{
					Type: "object",
					Properties: map[string]*Schema{
						"firstName": {Type: "string", Example: "John"},
						"lastName":  {Type: "string", Example: "Smith"},
					},
				}),
			},
			Responses: map[string]Response{
				"200": {
					Description: "Returns the updated employee.",
					Content:     jsonContent(&Schema{Ref: "#/components/schemas/Employee"}),
				},
				"400": {Description: "A name field is blank."},
				"404": {Description: "Employee not found."},
			},
		},
	})

	paths.Set("/applications", PathItem{
		Post: &Operation{
			Summary:     "Create applications for employee leave",
			Description: "Creates one or multiple leave applications for employees.",
			RequestBody: &RequestBody{
				Description: "An array of leave application objects, or a single leave application object",
				Required:    true,
				Content: jsonContent(&Schema{
					Type:  "array",
					Items: applicationItem,
				}),
			},
			Responses: map[string]Response{
				"201": {
					Description: "Successfully created the application(s).",
					Content: jsonContent(&Schema{
						Type:  "array",
						Items: &Schema{Ref: "#/components/schemas/Application"},
					}),
				},
				"400": {Description: "Bad request due to missing or invalid fields."},
			},
		},
	})

	paths.Set("/applications/search", PathItem{
		Get: &Operation{
			Summary:     "Search applications by employee details",
			Description: "Retrieve a paginated list of applications filtered by employee ID, first name, or last name.",
			Parameters: []Parameter{
				intParam("employeeId", "query", "The unique identifier of the employee.", false, 2),
				stringParam("firstName", "query", "The first name of the employee (case-insensitive).", "John"),
				stringParam("lastName", "query", "The last name of the employee (case-insensitive).", "Doe"),
				intParam("page", "query", "The page number for pagination (defaults to 1).", false, 1),
				intParam("limit", "query", "The number of results per page (defaults to 10).", false, 10),
			},
			Responses: map[string]Response{
				"200": {Description: "A paginated list of applications matching the search criteria."},
				"400": {Description: "Bad request due to invalid query parameters."},
			},
		},
	})

	return &Document{
		OpenAPI: "3.0.0",
		Info: Info{
			Title:       "HR Leave API",
			Description: "HR leave management API",
			Version:     "1.0.0",
			Contact:     Contact{Name: "HR Platform Team"},
			Servers:     []string{"http://localhost:5001"},
		},
		Paths: paths,
	}
}
