package utils

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// GetSystemMetrics는 CPU와 메모리 사용률을 0-1 범위로 반환합니다.
// 측정에 실패한 항목은 0으로 반환합니다.
func GetSystemMetrics() (float64, float64) {
	var cpuUsage, memoryUsage float64

	// interval 0: 직전 호출 이후의 사용률
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		cpuUsage = clampRatio(percents[0] / 100.0)
	} else if err != nil {
		Debug("system", "CPU 사용률 측정 실패: %v", err)
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		memoryUsage = clampRatio(vm.UsedPercent / 100.0)
	} else {
		Debug("system", "메모리 사용률 측정 실패: %v", err)
	}

	return cpuUsage, memoryUsage
}

// ServerLoad는 CPU와 메모리 사용률로 부하, 건강 상태, 처리 용량을 계산합니다
func ServerLoad(cpuUsage, memoryUsage float64) (load float64, healthy bool, capacity float64) {
	// CPU와 메모리 사용률의 가중 평균
	load = (cpuUsage * 0.7) + (memoryUsage * 0.3)
	healthy = cpuUsage <= 0.9 && memoryUsage <= 0.95
	capacity = clampRatio(1.0 - load)
	return load, healthy, capacity
}

func clampRatio(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
