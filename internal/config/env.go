package config

import "os"

const EnvCaseInsensitive = "CASE_INSENSITIVE"

// LookupEnvFunc 与 os.LookupEnv 签名一致，便于测试时注入环境。
type LookupEnvFunc func(key string) (string, bool)

// OSEnv 读取进程环境变量。
func OSEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnv 用固定键值表模拟环境变量。
func MapEnv(m map[string]string) LookupEnvFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func envSet(lookup LookupEnvFunc, key string) bool {
	if lookup == nil {
		return false
	}
	_, ok := lookup(key)
	return ok
}
