package profile

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gswrap-dev/gswrap/internal/config"
)

func envMap(vars []EnvVar) map[string]string {
	m := make(map[string]string, len(vars))
	for _, v := range vars {
		m[v.Name] = v.Value
	}
	return m
}

func TestEnvironment_BaseAlwaysPresent(t *testing.T) {
	t.Parallel()

	p := &ResolvedProfile{}
	env := envMap(p.Environment())

	assert.Equal(t, "RADV", env["AMD_VULKAN_ICD"])
	assert.Equal(t, "1", env["DISABLE_LAYER_AMD_SWITCHABLE_GRAPHICS_1"])
	assert.Equal(t, "1", env["DISABLE_LAYER_NV_OPTIMUS_1"])
	assert.Equal(t, "gamescope-0", env["GAMESCOPE_WAYLAND_DISPLAY"])
	assert.Equal(t, "sdlinput,wayland", env["PROTON_ADD_CONFIG"])
	assert.Equal(t, "1", env["PROTON_ENABLE_WAYLAND"])
	assert.Equal(t, "aco", env["RADV_PERFTEST"])
	assert.Equal(t, "wayland", env["SDL_VIDEODRIVER"])
}

func TestEnvironment_ConditionalLayers(t *testing.T) {
	t.Parallel()

	plain := envMap((&ResolvedProfile{}).Environment())
	assert.NotContains(t, plain, "ENABLE_GAMESCOPE_WSI")
	assert.NotContains(t, plain, "DXVK_HDR")

	wsi := envMap((&ResolvedProfile{UseWSI: true}).Environment())
	assert.Equal(t, "1", wsi["ENABLE_GAMESCOPE_WSI"])
	assert.NotContains(t, wsi, "DXVK_HDR")

	hdr := envMap((&ResolvedProfile{UseHDR: true}).Environment())
	assert.Equal(t, "1", hdr["DXVK_HDR"])
	assert.Equal(t, "1", hdr["ENABLE_HDR_WSI"])
	assert.Equal(t, "1", hdr["PROTON_ENABLE_HDR"])
	assert.NotContains(t, hdr, "ENABLE_GAMESCOPE_WSI")
}

func TestEnvironment_UserOverridesBase(t *testing.T) {
	t.Parallel()

	p := &ResolvedProfile{
		UserEnv: map[string]string{
			"SDL_VIDEODRIVER": "x11",
			"MANGOHUD":        "1",
		},
	}
	env := envMap(p.Environment())

	assert.Equal(t, "x11", env["SDL_VIDEODRIVER"])
	assert.Equal(t, "1", env["MANGOHUD"])
}

func TestEnvironment_UnsetWinsOverEveryLayer(t *testing.T) {
	t.Parallel()

	p := &ResolvedProfile{
		UseHDR:  true,
		UseWSI:  true,
		UserEnv: map[string]string{"MY_VAR": "1"},
		UnsetVars: []string{
			"SDL_VIDEODRIVER", // base layer
			"MY_VAR",          // user layer
			"DXVK_HDR",        // conditional layer
			"NEVER_SET",       // not present at all
		},
	}
	env := envMap(p.Environment())

	assert.NotContains(t, env, "SDL_VIDEODRIVER")
	assert.NotContains(t, env, "MY_VAR")
	assert.NotContains(t, env, "DXVK_HDR")
	assert.NotContains(t, env, "NEVER_SET")
	// Siblings of the removed conditional variable survive.
	assert.Equal(t, "1", env["ENABLE_HDR_WSI"])
	assert.Equal(t, "1", env["ENABLE_GAMESCOPE_WSI"])
}

func TestEnvironment_SortedAndDeterministic(t *testing.T) {
	t.Parallel()

	p := &ResolvedProfile{
		UseHDR: true,
		UseWSI: true,
		UserEnv: map[string]string{
			"ZED": "z", "ALPHA": "a", "MID": "m",
		},
	}

	first := p.Environment()
	for i := 1; i < len(first); i++ {
		assert.Less(t, first[i-1].Name, first[i].Name)
	}

	second := p.Environment()
	require.Equal(t, first, second)
}

func TestNeedsHDRWorkaround(t *testing.T) {
	t.Parallel()

	cases := []struct {
		backend string
		wsi     bool
		hdr     bool
		want    bool
	}{
		{"wayland", true, true, true},
		{"wayland", true, false, false},
		{"wayland", false, true, false},
		{"wayland", false, false, false},
		{"sdl", true, true, false},
		{"sdl", true, false, false},
		{"sdl", false, true, false},
		{"sdl", false, false, false},
	}

	for _, tc := range cases {
		tc := tc
		name := fmt.Sprintf("%s_wsi=%t_hdr=%t", tc.backend, tc.wsi, tc.hdr)
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			p := &ResolvedProfile{
				UseWSI: tc.wsi,
				UseHDR: tc.hdr,
				Options: map[string]config.OptionValue{
					"backend": config.StringOption(tc.backend),
				},
			}
			assert.Equal(t, tc.want, p.NeedsHDRWorkaround())
		})
	}

	// No backend option at all means no workaround.
	bare := &ResolvedProfile{UseWSI: true, UseHDR: true}
	assert.False(t, bare.NeedsHDRWorkaround())
}

func TestSortedOptionKeys(t *testing.T) {
	t.Parallel()

	p := &ResolvedProfile{
		Options: map[string]config.OptionValue{
			"rt":            config.BoolOption(true),
			"backend":       config.StringOption("sdl"),
			"output-width":  config.IntOption(2560),
			"adaptive-sync": config.BoolOption(true),
		},
	}

	assert.Equal(t, []string{"adaptive-sync", "backend", "output-width", "rt"}, p.SortedOptionKeys())
}
