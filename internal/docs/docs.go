// Package docs registers the BudgetNatin OpenAPI document with swag so that
// gin-swagger can serve it under /swagger/index.html.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register a new user", "responses": {"201": {"description": "User registered successfully"}, "400": {"description": "Missing fields or user exists"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Login user", "responses": {"200": {"description": "Login successful"}, "400": {"description": "Invalid email or password"}}}},
        "/auth/me": {"get": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Get current user", "responses": {"200": {"description": "User data retrieved"}, "401": {"description": "No token provided"}}}},
        "/auth/google": {"get": {"tags": ["auth"], "summary": "Sign in with Google", "responses": {"302": {"description": "Redirect to Google"}}}},
        "/auth/google/callback": {"get": {"tags": ["auth"], "summary": "Google OAuth callback", "responses": {"302": {"description": "Redirect to the client"}}}},
        "/expenses": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "List expenses", "responses": {"200": {"description": "Expenses retrieved successfully"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Add an expense", "responses": {"201": {"description": "Expense added successfully"}, "400": {"description": "Invalid input"}}}
        },
        "/expenses/batch": {"post": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Add several expenses at once", "responses": {"201": {"description": "Expenses added successfully"}, "400": {"description": "Invalid row"}}}},
        "/expenses/{expense_id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Update an expense", "parameters": [{"type": "integer", "name": "expense_id", "in": "path", "required": true}], "responses": {"200": {"description": "Expense updated successfully"}, "404": {"description": "Expense not found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Delete an expense", "parameters": [{"type": "integer", "name": "expense_id", "in": "path", "required": true}], "responses": {"200": {"description": "Expense deleted successfully"}, "404": {"description": "Expense not found"}}}
        },
        "/expense-categories": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["categories"], "summary": "List categories", "responses": {"200": {"description": "Categories retrieved successfully"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["categories"], "summary": "Add a category", "responses": {"201": {"description": "Category added successfully"}, "400": {"description": "Category already exists"}}}
        },
        "/expense-categories/{category_id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["categories"], "summary": "Rename a category", "parameters": [{"type": "integer", "name": "category_id", "in": "path", "required": true}], "responses": {"200": {"description": "Category updated successfully"}, "404": {"description": "Category not found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["categories"], "summary": "Delete a category", "parameters": [{"type": "integer", "name": "category_id", "in": "path", "required": true}], "responses": {"200": {"description": "Category deleted successfully"}, "400": {"description": "Category in use"}}}
        },
        "/monthly-budget": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["budgets"], "summary": "List monthly budgets", "responses": {"200": {"description": "Monthly budgets retrieved successfully"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["budgets"], "summary": "Add or replace a monthly budget", "responses": {"201": {"description": "Monthly budget added or updated"}}}
        },
        "/monthly-budget/{budget_id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["budgets"], "summary": "Update a monthly budget", "parameters": [{"type": "integer", "name": "budget_id", "in": "path", "required": true}], "responses": {"200": {"description": "Monthly budget updated successfully"}, "404": {"description": "Budget not found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["budgets"], "summary": "Delete a monthly budget", "parameters": [{"type": "integer", "name": "budget_id", "in": "path", "required": true}], "responses": {"200": {"description": "Monthly budget deleted successfully"}, "404": {"description": "Budget not found"}}}
        },
        "/extra-money": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["extra-money"], "summary": "List extra money", "responses": {"200": {"description": "Extra money records retrieved successfully"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["extra-money"], "summary": "Add extra money", "responses": {"201": {"description": "Extra money added successfully"}, "400": {"description": "Valid amount is required"}}}
        },
        "/extra-money/{extra_id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["extra-money"], "summary": "Update extra money", "parameters": [{"type": "integer", "name": "extra_id", "in": "path", "required": true}], "responses": {"200": {"description": "Extra money updated successfully"}, "404": {"description": "Record not found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["extra-money"], "summary": "Delete extra money", "parameters": [{"type": "integer", "name": "extra_id", "in": "path", "required": true}], "responses": {"200": {"description": "Extra money deleted successfully"}, "404": {"description": "Record not found"}}}
        },
        "/notifications": {"get": {"security": [{"BearerAuth": []}], "tags": ["notifications"], "summary": "List notifications", "responses": {"200": {"description": "Notifications retrieved"}}}},
        "/notifications/read-all": {"put": {"security": [{"BearerAuth": []}], "tags": ["notifications"], "summary": "Mark all notifications as read", "responses": {"200": {"description": "All notifications marked as read"}}}},
        "/notifications/check-overdue": {"post": {"security": [{"BearerAuth": []}], "tags": ["notifications"], "summary": "Create overdue and due-soon notifications", "responses": {"200": {"description": "Notifications checked"}}}},
        "/notifications/{id}/read": {"put": {"security": [{"BearerAuth": []}], "tags": ["notifications"], "summary": "Mark a notification as read", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Notification marked as read"}, "404": {"description": "Notification not found"}}}},
        "/notifications/{id}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["notifications"], "summary": "Delete a notification", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Notification deleted"}, "404": {"description": "Notification not found"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "BudgetNatin API",
	Description:      "BudgetNatin tracks personal expenses against monthly budgets, extra income and bill due dates.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
