package integrationtests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Three functions introduced by three YAML manifests, one of them a patch
// release on top of a minor release.
var gatedFiles = map[string]string{
	"functions/gated.yaml": `group: gated
entries:
  - name: a
    return_type: void
  - name: b
    return_type: int
    params:
      - {type: int, name: x}
  - name: c
    return_type: "char *"
`,
	"apis/v0.1.0.yaml": "version: v0.1.0\nentries: [a]\n",
	"apis/v0.2.0.yaml": "version: v0.2.0\nentries: [b]\n",
	"apis/v0.2.5.yaml": "version: v0.2.5\nentries: [c]\n",
}

const gatedConfig = `project: gate
display_name: Gate
definitions: [functions]
api_versions: [apis]
outputs:
  public_header: include/gate.h
  extension_header: include/gate_extension.h
  internal_header: src/extension_api.hpp
`

func TestNegotiate_BindsByMinorAndPatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		minor, patch string
		bound        []string
		absent       []string
	}{
		{minor: "1", patch: "0", bound: []string{"a"}, absent: []string{"b", "c"}},
		{minor: "2", patch: "0", bound: []string{"a", "b"}, absent: []string{"c"}},
		{minor: "2", patch: "5", bound: []string{"a", "b", "c"}},
		{minor: "1", patch: "5", bound: []string{"a"}, absent: []string{"b", "c"}},
	}

	for _, tc := range cases {
		t.Run("v0."+tc.minor+"."+tc.patch, func(t *testing.T) {
			t.Parallel()
			res := runIntegrationTest(t, gatedFiles, gatedConfig, "negotiate", "--minor", tc.minor, "--patch", tc.patch)
			require.NoError(t, res.Err)

			for _, name := range tc.bound {
				assert.Regexp(t, `\* \[\d\] v0\.\d\.\d `+name+`: bound\n`, res.Stdout)
			}
			for _, name := range tc.absent {
				assert.Regexp(t, `\* \[\d\] v0\.\d\.\d `+name+`: absent\n`, res.Stdout)
			}
		})
	}
}

func TestGenerate_InternalHeaderMatchesNegotiation(t *testing.T) {
	t.Parallel()
	res := runIntegrationTest(t, gatedFiles, gatedConfig, "generate")
	require.NoError(t, res.Err)

	internal := res.output(t, "src/extension_api.hpp")
	assert.Contains(t, internal, "inline gate_ext_api_v0 CreateApi(idx_t minor_version, idx_t patch_version) {")
	assert.Contains(t, internal, "    if (minor_version >= 1 && patch_version >= 0) {\n        result.a = a;\n")
	assert.Contains(t, internal, "    if (minor_version >= 2 && patch_version >= 0) {\n        result.b = b;\n")
	assert.Contains(t, internal, "    if (minor_version >= 2 && patch_version >= 5) {\n        result.c = c;\n")

	ext := res.output(t, "include/gate_extension.h")
	assert.Contains(t, ext, `#include "gate.h"`)
	assert.Contains(t, ext, "#define GATE_EXTENSION_API_VERSION_MINOR 2\n#define GATE_EXTENSION_API_VERSION_PATCH 5\n")
	assert.Contains(t, ext, "    char * (*c)();\n")

	public := res.output(t, "include/gate.h")
	assert.Contains(t, public, "GATE_API char *c();")
	assert.Contains(t, public, "GATE_API int b(int x);")

	assert.Contains(t, res.Stdout, " * Current Extension C API Version: v0.2.5\n")
	assert.Contains(t, res.Stdout, " * Functions in C API but excluded from struct: 0\n")
}
