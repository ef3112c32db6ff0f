package guard_test

import (
	"reflect"
	"testing"

	"github.com/specialistvlad/modcompat/internal/guard"
	"github.com/specialistvlad/modcompat/internal/registry"
	"github.com/specialistvlad/modcompat/internal/symbol"
	"github.com/specialistvlad/modcompat/internal/testutil"
	"github.com/stretchr/testify/require"
)

var (
	stringType = reflect.TypeOf("")
	boolType   = reflect.TypeOf(false)
	intType    = reflect.TypeOf(0)
)

func fixtureGuard(sink *testutil.CaptureSink) *guard.Guard {
	reg := registry.NewStatic(
		registry.ModuleDescriptor{ID: "export.mod", DisplayName: "Snapshot Exporter", Active: true},
		registry.ModuleDescriptor{ID: "disabled.mod", DisplayName: "Disabled Mod", Active: false},
	)
	resolver := symbol.NewResolver(testutil.NewFixtureUniverse())
	return guard.New(reg, resolver, sink)
}

func writeSnapshotRef() symbol.Ref {
	return symbol.Ref{Owner: testutil.ExporterOwner, Method: "WriteSnapshot"}
}

func TestVerifiedHandle_AbsentModuleIsSilentlyNil(t *testing.T) {
	// Scenario A: the module is not installed at all.
	sink := &testutil.CaptureSink{}
	g := fixtureGuard(sink)

	handle := g.VerifiedHandle("absent.mod", writeSnapshotRef(), nil, guard.Options{Diagnostics: true})

	require.Nil(t, handle)
	require.Empty(t, sink.Messages())
}

func TestVerifiedHandle_InactiveModuleIsSilentlyNil(t *testing.T) {
	sink := &testutil.CaptureSink{}
	g := fixtureGuard(sink)

	handle := g.VerifiedHandle("disabled.mod", writeSnapshotRef(), nil, guard.Options{Diagnostics: true})

	require.Nil(t, handle)
	require.Empty(t, sink.Messages())
}

func TestVerifiedHandle_MatchingSignatureYieldsHandle(t *testing.T) {
	// Scenario B: module active, method exists, shapes agree.
	sink := &testutil.CaptureSink{}
	g := fixtureGuard(sink)

	handle := g.VerifiedHandle("export.mod", writeSnapshotRef(),
		[]reflect.Type{stringType, boolType}, guard.Options{Diagnostics: true})

	require.NotNil(t, handle)
	require.Equal(t, "WriteSnapshot", handle.Method())
	require.True(t, handle.Func().IsValid())
	require.Empty(t, sink.Messages())
}

func TestVerifiedHandle_ModuleIDMatchIsCaseInsensitive(t *testing.T) {
	g := fixtureGuard(&testutil.CaptureSink{})

	handle := g.VerifiedHandle("EXPORT.MOD", writeSnapshotRef(),
		[]reflect.Type{stringType, boolType}, guard.Options{})

	require.NotNil(t, handle)
}

func TestVerifiedHandle_LengthDriftYieldsNilWithDiagnostic(t *testing.T) {
	// Scenario C: caller expects an extra parameter the method lost. The
	// filtered lookup misses, the by-name fallback finds the real shape,
	// and verification reports the drift.
	sink := &testutil.CaptureSink{}
	g := fixtureGuard(sink)

	handle := g.VerifiedHandle("export.mod",
		symbol.Ref{Owner: testutil.ExporterOwner, Method: "Flush"},
		[]reflect.Type{stringType}, guard.Options{Diagnostics: true})

	require.Nil(t, handle)
	messages := sink.Messages()
	require.Len(t, messages, 1)
	require.Contains(t, messages[0], "Snapshot Exporter")
	require.Contains(t, messages[0], "takes 0 parameter(s), caller expects 1")
}

func TestVerifiedHandle_TypeDriftYieldsNilWithDiagnostic(t *testing.T) {
	// Scenario D: parameter count survived but a type changed.
	sink := &testutil.CaptureSink{}
	g := fixtureGuard(sink)

	handle := g.VerifiedHandle("export.mod",
		symbol.Ref{Owner: testutil.ExporterOwner, Method: "Configure"},
		[]reflect.Type{intType}, guard.Options{Diagnostics: true})

	require.Nil(t, handle)
	messages := sink.Messages()
	require.Len(t, messages, 1)
	require.Contains(t, messages[0], "parameter 1 is")
	require.Contains(t, messages[0], "caller expects int")
}

func TestVerifiedHandle_MissingMethodYieldsNilWithDiagnostic(t *testing.T) {
	// Scenario E: the method was renamed or removed.
	sink := &testutil.CaptureSink{}
	g := fixtureGuard(sink)

	handle := g.VerifiedHandle("export.mod",
		symbol.Ref{Owner: testutil.ExporterOwner, Method: "WriteSnapshotV2"},
		[]reflect.Type{stringType}, guard.Options{Diagnostics: true})

	require.Nil(t, handle)
	messages := sink.Messages()
	require.Len(t, messages, 1)
	require.Contains(t, messages[0], "Snapshot Exporter")
	require.Contains(t, messages[0], "could not be located")
}

func TestVerifiedHandle_FallbackAcceptsDriftedCandidateThenVerifies(t *testing.T) {
	// The caller's expected shape matches no candidate exactly, so the
	// fallback returns the first by-name candidate, which verification then
	// rejects. Known ambiguity: with several same-named candidates the
	// fallback inspects whichever registered first.
	sink := &testutil.CaptureSink{}
	g := fixtureGuard(sink)

	handle := g.VerifiedHandle("export.mod", writeSnapshotRef(),
		[]reflect.Type{stringType, boolType, intType}, guard.Options{Diagnostics: true})

	require.Nil(t, handle)
	messages := sink.Messages()
	require.Len(t, messages, 1)
	require.Contains(t, messages[0], "takes 2 parameter(s), caller expects 3")
}

func TestVerifiedHandle_ExactFilterPrefersDriftedShapeThatStillMatches(t *testing.T) {
	// The single-string legacy shape registered second, but the filtered
	// pass selects it because it is the exact match for the expectation.
	g := fixtureGuard(&testutil.CaptureSink{})

	handle := g.VerifiedHandle("export.mod", writeSnapshotRef(),
		[]reflect.Type{stringType}, guard.Options{})

	require.NotNil(t, handle)
	require.Equal(t, []reflect.Type{stringType}, handle.Params())
}

func TestVerifiedHandle_SilentWithoutDiagnostics(t *testing.T) {
	sink := &testutil.CaptureSink{}
	g := fixtureGuard(sink)

	require.Nil(t, g.VerifiedHandle("export.mod",
		symbol.Ref{Owner: testutil.ExporterOwner, Method: "WriteSnapshotV2"},
		nil, guard.Options{}))
	require.Nil(t, g.VerifiedHandle("export.mod",
		symbol.Ref{Owner: testutil.ExporterOwner, Method: "Flush"},
		[]reflect.Type{stringType}, guard.Options{}))
	require.Empty(t, sink.Messages())
}

func TestVerifiedHandleToken_ResolvesCombinedToken(t *testing.T) {
	g := fixtureGuard(&testutil.CaptureSink{})

	handle := g.VerifiedHandleToken("export.mod", testutil.ExporterOwner+":Flush", nil, guard.Options{})

	require.NotNil(t, handle)
	require.Equal(t, "Flush", handle.Method())
}

func TestVerifiedHandleToken_MalformedTokenYieldsNilWithDiagnostic(t *testing.T) {
	sink := &testutil.CaptureSink{}
	g := fixtureGuard(sink)

	handle := g.VerifiedHandleToken("export.mod", "NoSeparator", nil, guard.Options{Diagnostics: true})

	require.Nil(t, handle)
	messages := sink.Messages()
	require.Len(t, messages, 1)
	require.Contains(t, messages[0], "malformed")
}

func TestVerifiedHandleToken_InactiveModuleWinsOverMalformedToken(t *testing.T) {
	// The registry check still comes first: an absent module stays silent
	// even when the token is bad.
	sink := &testutil.CaptureSink{}
	g := fixtureGuard(sink)

	require.Nil(t, g.VerifiedHandleToken("absent.mod", "NoSeparator", nil, guard.Options{Diagnostics: true}))
	require.Empty(t, sink.Messages())
}
