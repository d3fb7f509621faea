package config

import "testing"

func TestResolveEnvPresence(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want bool
		src  CaseSource
	}{
		{"unset", nil, true, CaseFromDefault},
		{"set", map[string]string{EnvCaseInsensitive: "1"}, false, CaseFromEnv},
		{"set empty", map[string]string{EnvCaseInsensitive: ""}, false, CaseFromEnv},
		{"other vars only", map[string]string{"CASE_SENSITIVE": "1"}, true, CaseFromDefault},
	}
	for _, c := range cases {
		cfg, err := Resolve([]string{"minigrep", "q", "f.txt"}, MapEnv(c.env))
		if err != nil {
			t.Fatalf("%s: resolve failed: %v", c.name, err)
		}
		if cfg.CaseSensitive != c.want || cfg.CaseSource != c.src {
			t.Fatalf("%s: got %+v", c.name, cfg)
		}
	}
}

func TestOSEnv(t *testing.T) {
	t.Setenv(EnvCaseInsensitive, "")
	cfg, err := Resolve([]string{"minigrep", "q", "f.txt"}, OSEnv)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if cfg.CaseSensitive {
		t.Fatalf("expected insensitive when %s is set", EnvCaseInsensitive)
	}
}
