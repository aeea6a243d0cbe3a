package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerTools_Table(t *testing.T) {
	tt := newTestTools(t)
	table := tt.ServerTools()

	names := make([]string, 0, len(table))
	byName := map[string]int{}
	for i, st := range table {
		require.NotNil(t, st.Handler, "tool %q has no handler", st.Tool.Name)
		names = append(names, st.Tool.Name)
		byName[st.Tool.Name] = i
	}
	assert.ElementsMatch(t, []string{
		"createTodo", "getTodo", "listTodos", "updateTodo",
		"deleteTodo", "completeTodo", "getTodoStats", "getTodoResources",
	}, names)

	// The listing cap is part of the tool contract, so it is stated up front.
	resources := table[byName["getTodoResources"]].Tool
	assert.Contains(t, resources.Description, "at most the first 100")
}
