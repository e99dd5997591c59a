package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPack = `{
	"id": 90,
	"title": "The Locked Cabinet",
	"category": "medication",
	"difficulty": "complex",
	"estimated_mins": 5,
	"nodes": [
		{
			"key": "start",
			"content": "The medication cabinet key is missing at round time.",
			"question": "What do you do first?",
			"choices": [
				{
					"id": 9001,
					"label": "Follow the missing-key procedure and inform the nurse in charge",
					"next_node_key": "resolved",
					"is_best_practice": true,
					"feedback": "Procedure exists for exactly this moment."
				},
				{
					"id": 9002,
					"label": "Search quietly and hope it turns up before anyone notices",
					"next_node_key": "delayed",
					"feedback": "Delay compounds the risk of a missed dose."
				}
			]
		},
		{
			"key": "resolved",
			"content": "The spare key is issued and the round runs twenty minutes late, documented.",
			"is_ending": true,
			"client_status_impact": 5,
			"wellbeing_impact": 5
		},
		{
			"key": "delayed",
			"content": "The round is an hour late and two residents miss time-critical doses.",
			"is_ending": true,
			"client_status_impact": -15,
			"wellbeing_impact": -10
		}
	]
}`

func writePack(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pack.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	sc, err := LoadFile(writePack(t, validPack))
	require.NoError(t, err)

	assert.Equal(t, 90, sc.ID)
	assert.Equal(t, "The Locked Cabinet", sc.Title)
	assert.Equal(t, DifficultyComplex, sc.Difficulty)
	require.Len(t, sc.Nodes, 3)
	require.Len(t, sc.Nodes[0].Choices, 2)
	assert.True(t, sc.Nodes[0].Choices[0].IsBestPractice)
	assert.Equal(t, "resolved", sc.Nodes[0].Choices[0].NextNodeKey)
	assert.Equal(t, -15, sc.Nodes[2].ClientStatusImpact)
	assert.True(t, sc.Nodes[2].IsEnding)
}

func TestLoadFileDefaultsDifficulty(t *testing.T) {
	pack := strings.Replace(validPack, `"difficulty": "complex",`, "", 1)
	sc, err := LoadFile(writePack(t, pack))
	require.NoError(t, err)
	assert.Equal(t, DifficultyStandard, sc.Difficulty)
}

func TestLoadFileRejectsBadShape(t *testing.T) {
	cases := []struct {
		name string
		pack string
	}{
		{"not JSON", "{nope"},
		{"missing title", `{"id": 91, "nodes": []}`},
		{"empty nodes", `{"id": 91, "title": "x", "nodes": []}`},
		{"bad difficulty", strings.Replace(validPack, `"complex"`, `"impossible"`, 1)},
		{"impact out of range", strings.Replace(validPack, `"client_status_impact": -15`, `"client_status_impact": -500`, 1)},
		{"choice missing target", strings.Replace(validPack, `"next_node_key": "resolved",`, "", 1)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := LoadFile(writePack(t, c.pack))
			assert.Error(t, err)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadAndRegister(t *testing.T) {
	require.NoError(t, LoadAndRegister(writePack(t, validPack)))

	sc, err := Get(90)
	require.NoError(t, err)
	assert.Equal(t, "The Locked Cabinet", sc.Title)

	c, err := GetChoice(9001)
	require.NoError(t, err)
	assert.Equal(t, 90, c.ScenarioID)

	// A pack that collides with the loaded set is rejected whole.
	assert.Error(t, LoadAndRegister(writePack(t, validPack)))
}
