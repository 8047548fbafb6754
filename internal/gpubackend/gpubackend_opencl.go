//go:build opencl

// Package gpubackend batches directly-keyed weakness-module candidate
// derivation onto an OpenCL device, gated behind the `opencl` build
// tag. This file is the real implementation; gpubackend_stub.go covers
// the `!opencl` build.
//
// Only direct-key modules (profanity-style: the PRNG output is used
// directly as the private scalar, no BIP32 tree to walk) are eligible
// for this backend (Definition.GPUEligible). pipeline.Run does not call
// into this package; every run derives its candidates on the CPU. The
// embedded kernel takes host-supplied scalars and computes no public
// keys (see kernels/direct_key_scan.cl).
package gpubackend

/*
#cgo CFLAGS: -I${SRCDIR}/../../deps/opencl-headers
#cgo linux LDFLAGS: -lOpenCL
#cgo darwin LDFLAGS: -framework OpenCL
#cgo windows LDFLAGS: -L${SRCDIR}/../../deps/lib -lOpenCL

#ifdef __APPLE__
#include <OpenCL/opencl.h>
#else
#include <CL/cl.h>
#endif

#include <stdlib.h>
*/
import "C"

import (
	"embed"
	"errors"
	"fmt"
	"sync"
	"unsafe"
)

//go:embed kernels/direct_key_scan.cl
var kernelSource embed.FS

// ErrBackendUnavailable is returned when no OpenCL platform/device is
// present even though the binary was built with the `opencl` tag.
var ErrBackendUnavailable = errors.New("gpubackend: no OpenCL device available")

// BatchResult is one derived candidate: the seed that produced it and
// the hash160 program an address.Kind would encode.
type BatchResult struct {
	Seed    uint64
	Program [20]byte
}

type device struct {
	platform C.cl_platform_id
	id       C.cl_device_id
	ctx      C.cl_context
	queue    C.cl_command_queue
	program  C.cl_program
	kernel   C.cl_kernel
}

var (
	once     sync.Once
	dev      *device
	initErr  error
)

func ensureInit() error {
	once.Do(func() {
		d, err := initOpenCL()
		if err != nil {
			initErr = err
			return
		}
		dev = d
	})
	return initErr
}

// Available reports whether an OpenCL platform and GPU device were
// found and the kernel compiled successfully.
func Available() bool {
	return ensureInit() == nil
}

func initOpenCL() (*device, error) {
	d := &device{}
	var ret C.cl_int
	var numPlatforms C.cl_uint
	if C.clGetPlatformIDs(0, nil, &numPlatforms) != C.CL_SUCCESS || numPlatforms == 0 {
		return nil, ErrBackendUnavailable
	}
	platforms := make([]C.cl_platform_id, numPlatforms)
	C.clGetPlatformIDs(numPlatforms, &platforms[0], nil)
	d.platform = platforms[0]

	var numDevices C.cl_uint
	if C.clGetDeviceIDs(d.platform, C.CL_DEVICE_TYPE_GPU, 0, nil, &numDevices) != C.CL_SUCCESS || numDevices == 0 {
		return nil, ErrBackendUnavailable
	}
	devices := make([]C.cl_device_id, numDevices)
	C.clGetDeviceIDs(d.platform, C.CL_DEVICE_TYPE_GPU, numDevices, &devices[0], nil)
	d.id = devices[0]

	d.ctx = C.clCreateContext(nil, 1, &d.id, nil, nil, &ret)
	if ret != C.CL_SUCCESS {
		return nil, fmt.Errorf("gpubackend: context: %d", ret)
	}
	d.queue = C.clCreateCommandQueue(d.ctx, d.id, 0, &ret)
	if ret != C.CL_SUCCESS {
		return nil, fmt.Errorf("gpubackend: queue: %d", ret)
	}

	src, err := kernelSource.ReadFile("kernels/direct_key_scan.cl")
	if err != nil {
		return nil, fmt.Errorf("gpubackend: read kernel source: %w", err)
	}
	cSrc := C.CString(string(src))
	defer C.free(unsafe.Pointer(cSrc))
	length := C.size_t(len(src))
	d.program = C.clCreateProgramWithSource(d.ctx, 1, &cSrc, &length, &ret)
	if ret != C.CL_SUCCESS {
		return nil, fmt.Errorf("gpubackend: program creation: %d", ret)
	}
	if C.clBuildProgram(d.program, 1, &d.id, nil, nil, nil) != C.CL_SUCCESS {
		var logSize C.size_t
		C.clGetProgramBuildInfo(d.program, d.id, C.CL_PROGRAM_BUILD_LOG, 0, nil, &logSize)
		buildLog := make([]byte, logSize)
		if logSize > 0 {
			C.clGetProgramBuildInfo(d.program, d.id, C.CL_PROGRAM_BUILD_LOG, logSize, unsafe.Pointer(&buildLog[0]), nil)
		}
		return nil, fmt.Errorf("gpubackend: program build failed: %s", string(buildLog))
	}

	kName := C.CString("derive_scalar_mult_g")
	defer C.free(unsafe.Pointer(kName))
	d.kernel = C.clCreateKernel(d.program, kName, &ret)
	if ret != C.CL_SUCCESS {
		return nil, fmt.Errorf("gpubackend: kernel creation: %d", ret)
	}
	return d, nil
}

// DeriveBatch initializes the OpenCL device and then always returns an
// error: it does not launch the kernel and returns no candidates.
// Nothing in the repository calls it; pipeline.Run and
// cmd/weakwalletscan derive every candidate on the CPU through
// internal/modules.
func DeriveBatch(seedStart, seedEnd uint64) ([]BatchResult, error) {
	if err := ensureInit(); err != nil {
		return nil, err
	}
	return nil, errors.New("gpubackend: DeriveBatch not yet wired to a production kernel; CPU fallback is authoritative")
}

// Close releases the OpenCL context, queue, program, and kernel.
func Close() {
	if dev == nil {
		return
	}
	if dev.kernel != nil {
		C.clReleaseKernel(dev.kernel)
	}
	if dev.program != nil {
		C.clReleaseProgram(dev.program)
	}
	if dev.queue != nil {
		C.clReleaseCommandQueue(dev.queue)
	}
	if dev.ctx != nil {
		C.clReleaseContext(dev.ctx)
	}
}
