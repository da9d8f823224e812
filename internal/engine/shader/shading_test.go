package shader

import (
	"strings"
	"testing"
)

func TestShadingSourcesDeclareUniforms(t *testing.T) {
	src := ShadingVertex + ShadingFragment
	for _, name := range Uniforms {
		if !strings.Contains(src, "uniform") || !strings.Contains(src, " "+name+";") {
			t.Errorf("shading program does not declare uniform %q", name)
		}
	}
}

func TestShadingAttributeLocations(t *testing.T) {
	for _, decl := range []string{
		"layout (location = 0) in vec3 " + attribPositionName,
		"layout (location = 1) in vec3 " + attribNormalName,
	} {
		if !strings.Contains(ShadingVertex, decl) {
			t.Errorf("vertex shader missing %q", decl)
		}
	}
}

func TestCompileErrorMessage(t *testing.T) {
	err := &CompileError{Stage: "vertex shader", Log: "0:3: syntax error\n\x00"}
	if got := err.Error(); got != "vertex shader: 0:3: syntax error" {
		t.Errorf("CompileError.Error() = %q", got)
	}
}
