// Command libvaluegen exposes interpolation.GenerateValue to native hosts
// through the C ABI:
//
//	go build -buildmode=c-shared -o libvaluegen.so ./cmd/libvaluegen
//
// The generated libvaluegen.h declares
//
//	float generate_value(float, float, int32_t, int32_t, int32_t);
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"github.com/xaionaro-go/valuegen/pkg/interpolation"
)

//export generate_value
func generate_value(
	startValue, endValue C.float,
	startTime, endTime, currentTime C.int32_t,
) C.float {
	return C.float(interpolation.GenerateValue(
		float32(startValue), float32(endValue),
		int32(startTime), int32(endTime), int32(currentTime),
	))
}

func main() {}

// callGenerateValue calls the exported symbol with the argument conversions
// a native host call goes through.
func callGenerateValue(
	startValue, endValue float32,
	startTime, endTime, currentTime int32,
) float32 {
	return float32(generate_value(
		C.float(startValue), C.float(endValue),
		C.int32_t(startTime), C.int32_t(endTime), C.int32_t(currentTime),
	))
}
