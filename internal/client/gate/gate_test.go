package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_ProtectedWhileAnonymous_RedirectsToLoginWithTarget(t *testing.T) {
	d := Evaluate(false, BotsPath)
	assert.Equal(t, RedirectToLogin, d.Action)
	assert.Equal(t, "/bots", d.Target)
}

func TestEvaluate_ProtectedWhileAuthenticated_Allows(t *testing.T) {
	d := Evaluate(true, BotsPath)
	assert.Equal(t, Allow, d.Action)
}

func TestEvaluate_PublicOnlyWhileAuthenticated_RedirectsHome(t *testing.T) {
	d := Evaluate(true, LoginPath)
	assert.Equal(t, RedirectToHome, d.Action)
}

func TestEvaluate_PublicOnlyWhileAnonymous_Allows(t *testing.T) {
	d := Evaluate(false, RegisterPath)
	assert.Equal(t, Allow, d.Action)
}

func TestEvaluate_AllProtectedPages(t *testing.T) {
	for _, path := range []string{HomePath, BotsPath, RulesPath, SchedulesPath, LogsPath, SettingsPath} {
		d := Evaluate(false, path)
		require.Equal(t, RedirectToLogin, d.Action, "path %s", path)
		require.Equal(t, path, d.Target, "path %s", path)

		d = Evaluate(true, path)
		require.Equal(t, Allow, d.Action, "path %s", path)
	}
}

func TestEvaluate_UnknownPath_RedirectsHome(t *testing.T) {
	for _, authenticated := range []bool{false, true} {
		d := Evaluate(authenticated, "/no-such-page")
		assert.Equal(t, RedirectToHome, d.Action)
		assert.Empty(t, d.Target)
	}
}

func TestClassify_KnownAndUnknown(t *testing.T) {
	class, ok := Classify(LoginPath)
	require.True(t, ok)
	assert.Equal(t, PublicOnly, class)

	_, ok = Classify("/nope")
	assert.False(t, ok)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "redirect-to-login", RedirectToLogin.String())
	assert.Equal(t, "redirect-to-home", RedirectToHome.String())
}
