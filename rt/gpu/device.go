package gpu

import (
	"context"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Device bundles the adapter and device used for the compute backend. No
// surface is configured; the contact buffer is the only output read back.
type Device struct {
	Adapter *wgpu.Adapter
	Device  *wgpu.Device
	Queue   *wgpu.Queue
}

func OpenDevice(label string) (*Device, error) {
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, fmt.Errorf("request adapter: %w", err)
	}
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: label,
	})
	if err != nil {
		adapter.Release()
		return nil, fmt.Errorf("request device: %w", err)
	}
	return &Device{
		Adapter: adapter,
		Device:  device,
		Queue:   device.GetQueue(),
	}, nil
}

func (d *Device) Release() {
	if d.Device != nil {
		d.Device.Release()
	}
	if d.Adapter != nil {
		d.Adapter.Release()
	}
}

// WorkgroupSize must match @workgroup_size in the compute program.
const WorkgroupSize = 8

// ComputeProgram runs a WGSL compute entry point over the viewport with the
// BufferSet bound at group 0. Its Dispatch method is a DispatchFunc.
type ComputeProgram struct {
	Pipeline *wgpu.ComputePipeline

	bindGroup  *wgpu.BindGroup
	generation uint64
}

func NewComputeProgram(device *wgpu.Device, label, wgsl, entryPoint string) (*ComputeProgram, error) {
	if err := CheckWGSL(label, wgsl); err != nil {
		return nil, err
	}
	module, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          label,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: wgsl},
	})
	if err != nil {
		return nil, fmt.Errorf("create shader module %q: %w", label, err)
	}
	defer module.Release()

	pipeline, err := device.CreateComputePipeline(&wgpu.ComputePipelineDescriptor{
		Label: label,
		Compute: wgpu.ProgrammableStageDescriptor{
			Module:     module,
			EntryPoint: entryPoint,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create compute pipeline %q: %w", label, err)
	}
	return &ComputeProgram{Pipeline: pipeline}, nil
}

// bindGroupFor rebuilds the bind group when the set's buffers were
// reallocated since the last frame.
func (p *ComputeProgram) bindGroupFor(set *BufferSet) (*wgpu.BindGroup, error) {
	if p.bindGroup != nil && p.generation == set.Generation {
		return p.bindGroup, nil
	}
	if p.bindGroup != nil {
		p.bindGroup.Release()
		p.bindGroup = nil
	}
	bg, err := set.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout:  p.Pipeline.GetBindGroupLayout(0),
		Entries: set.Entries(),
	})
	if err != nil {
		return nil, fmt.Errorf("create bind group: %w", err)
	}
	p.bindGroup = bg
	p.generation = set.Generation
	return bg, nil
}

func (p *ComputeProgram) Dispatch(ctx context.Context, encoder *wgpu.CommandEncoder, set *BufferSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	bg, err := p.bindGroupFor(set)
	if err != nil {
		return err
	}
	pass := encoder.BeginComputePass(nil)
	pass.SetPipeline(p.Pipeline)
	pass.SetBindGroup(0, bg, nil)
	pass.DispatchWorkgroups(workgroups(set.Width), workgroups(set.Height), 1)
	return pass.End()
}

func (p *ComputeProgram) Release() {
	if p.bindGroup != nil {
		p.bindGroup.Release()
	}
	if p.Pipeline != nil {
		p.Pipeline.Release()
	}
}

func workgroups(n int) uint32 {
	return uint32((n + WorkgroupSize - 1) / WorkgroupSize)
}
