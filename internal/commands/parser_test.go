package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var env = Envelope{RoomCode: "room-1", SenderID: "u-1", SenderName: "Kim"}

func TestParse_Classification(t *testing.T) {
	tests := []struct {
		line string
		want Kind
	}{
		{"!help", KindListCommands},
		{"!명령어", KindListCommands},
		{"!done capstone, design", KindCompleteTask},
		{"!과제완료 캡스톤, 설계", KindCompleteTask},
		{"!schedule standup, tomorrow, 09:30", KindAddSchedule},
		{"!일정 회의, 내일, 10:00", KindAddSchedule},
		{"!project capstone", KindAddProject},
		{"!프로젝트 캡스톤 최종", KindAddProject},
		{"!task capstone, design, Kim", KindAddTask},
		{"!과제 캡스톤, 설계, 김", KindAddTask},
		{"hello everyone", KindChat},
		{"  !help  ", KindListCommands},
		{"help !task", KindChat},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd := Parse(env, tt.line)
			assert.Equal(t, tt.want, cmd.Kind())
			assert.Equal(t, env, cmd.Origin())
		})
	}
}

func TestParse_CompleteWinsOverTaskPrefix(t *testing.T) {
	cmd := Parse(env, "!과제완료 캡스톤, 설계")

	got, ok := cmd.(CompleteTask)
	require.True(t, ok)
	assert.Equal(t, []string{"캡스톤", "설계"}, got.Fields)
}

func TestParse_TaskFieldsAreTrimmed(t *testing.T) {
	cmd := Parse(env, "!task  capstone ,design,  Kim , completed ")

	got, ok := cmd.(AddTask)
	require.True(t, ok)
	assert.Equal(t, []string{"capstone", "design", "Kim", "completed"}, got.Fields)
}

func TestParse_ProjectNameIsNotSplit(t *testing.T) {
	cmd := Parse(env, "!project  final, part two  ")

	got, ok := cmd.(AddProject)
	require.True(t, ok)
	assert.Equal(t, "final, part two", got.Name)
}

func TestParse_EmptyRemainder(t *testing.T) {
	sched, ok := Parse(env, "!schedule").(AddSchedule)
	require.True(t, ok)
	assert.Equal(t, []string{""}, sched.Fields)

	project, ok := Parse(env, "!project   ").(AddProject)
	require.True(t, ok)
	assert.Equal(t, "", project.Name)
}

func TestParse_ChatKeepsOriginalText(t *testing.T) {
	got, ok := Parse(env, "  Ｈｅｌｌｏ ① ﬁle\nsecond line  ").(Unrecognized)
	require.True(t, ok)
	assert.Equal(t, "Ｈｅｌｌｏ ① ﬁle\nsecond line", got.Text)

	got, ok = Parse(env, " hi\r\nthere ").(Unrecognized)
	require.True(t, ok)
	assert.Equal(t, "hi\r\nthere", got.Text)
}

func TestParse_CommandsAreNormalized(t *testing.T) {
	// Fullwidth exclamation mark folds to "!" under NFKC.
	assert.Equal(t, KindListCommands, Parse(env, "！help").Kind())

	task, ok := Parse(env, "!task Ｗeb, Ｄesign\n, Kim").(AddTask)
	require.True(t, ok)
	assert.Equal(t, []string{"Web", "Design", "Kim"}, task.Fields)
	assert.Equal(t, "Design", Normalize(" Ｄesign\r\n"))
}

func TestFieldHelpers(t *testing.T) {
	fields := []string{"a", "b", "", "d"}

	assert.Equal(t, "b", Field(fields, 1))
	assert.Equal(t, "", Field(fields, 7))
	assert.Equal(t, 2, CountPresent(fields))
	assert.Equal(t, 0, CountPresent([]string{""}))
}
