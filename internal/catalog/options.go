package catalog

// Groups returns the six settings groups in display order. The tables mirror
// xmrig's own option reference; keys match the long switch names the miner
// accepts.
func Groups() []Group {
	return []Group{
		{Name: "network", Title: "Network", Options: networkOptions()},
		{Name: "cpu", Title: "CPU Backend", Options: cpuOptions()},
		{Name: "api", Title: "API", Options: apiOptions()},
		{Name: "tls", Title: "TLS", Options: tlsOptions()},
		{Name: "logging", Title: "Logging", Options: loggingOptions()},
		{Name: "misc", Title: "Misc", Options: miscOptions()},
	}
}

func networkOptions() []Option {
	return []Option{
		{Label: "URL", Flag: "-o", Key: "url", Kind: KindText, Default: "stratum+tcp://randomxmonero.auto.nicehash.com:9200"},
		{Label: "Coin", Flag: "--coin", Key: "coin", Kind: KindText},
		{Label: "Username", Flag: "-u", Key: "user", Kind: KindText, Default: "38bj4uu8uDsnC5NjoeGb8TMviBCEtMiaet"},
		{Label: "Password", Flag: "-p", Key: "pass", Kind: KindText},
		{Label: "Userpass", Flag: "-O", Key: "userpass", Kind: KindText},
		{Label: "Proxy", Flag: "-x", Key: "proxy", Kind: KindText},
		{Label: "Keepalive", Flag: "-k", Key: "keepalive", Kind: KindCheckbox},
		{Label: "Nicehash", Flag: "--nicehash", Key: "nicehash", Kind: KindCheckbox},
		{Label: "Rig ID", Flag: "--rig-id", Key: "rig-id", Kind: KindText},
		{Label: "Algorithm", Flag: "-a", Key: "algo", Kind: KindDropdown, Choices: []string{
			"gr", "rx/graft", "cn/upx2", "argon2/chukwav2", "cn/ccx", "kawpow", "rx/keva",
			"cn-pico/tlo", "rx/sfx", "rx/arq", "rx/0", "argon2/chukwa", "argon2/ninja", "rx/wow",
			"cn/fast", "cn/rwz", "cn/zls", "cn/double", "cn/r", "cn-pico", "cn/half", "cn/2",
			"cn/xao", "cn/rto", "cn-heavy/tube", "cn-heavy/xhv", "cn-heavy/0", "cn/1",
			"cn-lite/1", "cn-lite/0", "cn/0",
		}},
	}
}

func cpuOptions() []Option {
	return []Option{
		{Label: "Disable CPU", Flag: "--no-cpu", Key: "no-cpu", Kind: KindCheckbox},
		{Label: "Threads", Flag: "-t", Key: "threads", Kind: KindText},
		{Label: "CPU Affinity", Flag: "--cpu-affinity", Key: "cpu-affinity", Kind: KindText},
		{Label: "Algorithm Variation", Flag: "-v", Key: "av", Kind: KindText},
		{Label: "CPU Priority", Flag: "--cpu-priority", Key: "cpu-priority", Kind: KindText},
		{Label: "Max Threads Hint", Flag: "--cpu-max-threads-hint", Key: "cpu-max-threads-hint", Kind: KindText},
		{Label: "CPU Memory Pool", Flag: "--cpu-memory-pool", Key: "cpu-memory-pool", Kind: KindText},
		{Label: "CPU No Yield", Flag: "--cpu-no-yield", Key: "cpu-no-yield", Kind: KindCheckbox},
		{Label: "No Huge Pages", Flag: "--no-huge-pages", Key: "no-huge-pages", Kind: KindCheckbox},
		{Label: "Huge Page Size", Flag: "--hugepage-size", Key: "hugepage-size", Kind: KindText},
		{Label: "Huge Pages JIT", Flag: "--huge-pages-jit", Key: "huge-pages-jit", Kind: KindCheckbox},
		{Label: "ASM Optimizations", Flag: "--asm", Key: "asm", Kind: KindDropdown, Choices: []string{
			"auto", "none", "intel", "ryzen", "bulldozer",
		}},
		{Label: "Argon2 Implementation", Flag: "--argon2-impl", Key: "argon2-impl", Kind: KindDropdown, Choices: []string{
			"x86_64", "SSE2", "SSSE3", "XOP", "AVX2", "AVX-512F",
		}},
		{Label: "RandomX Init", Flag: "--randomx-init", Key: "randomx-init", Kind: KindText},
		{Label: "RandomX No NUMA", Flag: "--randomx-no-numa", Key: "randomx-no-numa", Kind: KindCheckbox},
		{Label: "RandomX Mode", Flag: "--randomx-mode", Key: "randomx-mode", Kind: KindDropdown, Choices: []string{
			"auto", "fast", "light",
		}},
		{Label: "RandomX 1GB Pages", Flag: "--randomx-1gb-pages", Key: "randomx-1gb-pages", Kind: KindCheckbox},
		{Label: "RandomX MSR", Flag: "--randomx-wrmsr", Key: "randomx-wrmsr", Kind: KindText},
		{Label: "RandomX No RDMSR", Flag: "--randomx-no-rdmsr", Key: "randomx-no-rdmsr", Kind: KindCheckbox},
		{Label: "RandomX Cache QoS", Flag: "--randomx-cache-qos", Key: "randomx-cache-qos", Kind: KindCheckbox},
	}
}

func apiOptions() []Option {
	return []Option{
		{Label: "Worker ID", Flag: "--api-worker-id", Key: "api-worker-id", Kind: KindText},
		{Label: "Instance ID", Flag: "--api-id", Key: "api-id", Kind: KindText},
		{Label: "Host", Flag: "--http-host", Key: "http-host", Kind: KindText, Default: "127.0.0.1"},
		{Label: "Port", Flag: "--http-port", Key: "http-port", Kind: KindText},
		{Label: "Access Token", Flag: "--http-access-token", Key: "http-access-token", Kind: KindText},
		{Label: "No Restricted", Flag: "--http-no-restricted", Key: "http-no-restricted", Kind: KindCheckbox},
	}
}

func tlsOptions() []Option {
	return []Option{
		{Label: "TLS Gen", Flag: "--tls-gen", Key: "tls-gen", Kind: KindText},
	}
}

func loggingOptions() []Option {
	return []Option{
		{Label: "Syslog", Flag: "-S", Key: "syslog", Kind: KindCheckbox},
	}
}

func miscOptions() []Option {
	// Intentionally empty: the config-file option is handled by minerctl's own
	// settings document rather than passed through to the miner.
	return nil
}
