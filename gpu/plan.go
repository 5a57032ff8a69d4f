package gpu

// PlanOptions controls plan creation.
type PlanOptions struct {
	// DeviceIndex selects which device to use (0 = default).
	DeviceIndex int

	// Workers requests a number of execution lanes for backends that run on
	// the host (the mock backend). Zero lets the backend decide.
	Workers int
}

// Plan binds the simplex transform kernel to a device context for a fixed
// ambient dimension. A plan may be reused across launches and must be closed
// when no longer needed.
type Plan struct {
	nDims   int
	ctx     Context
	kernel  Kernel
	options PlanOptions
}

// NewPlan creates a plan using the registered backend. nDims must be 2 or 3.
func NewPlan(nDims int, opts PlanOptions) (*Plan, error) {
	if nDims != 2 && nDims != 3 {
		return nil, ErrUnsupportedDimension
	}

	backend := getBackend()
	if backend == nil {
		return nil, ErrNoBackend
	}
	if !backend.Available() {
		return nil, ErrBackendUnavailable
	}

	ctx, err := backend.NewContext(opts.DeviceIndex)
	if err != nil {
		return nil, err
	}
	kernel, err := ctx.NewKernel(nDims, opts)
	if err != nil {
		_ = ctx.Close()
		return nil, err
	}

	return &Plan{
		nDims:   nDims,
		ctx:     ctx,
		kernel:  kernel,
		options: opts,
	}, nil
}

// Device reports the device the plan is bound to.
func (p *Plan) Device() DeviceInfo {
	return p.ctx.Device()
}

// Transform validates args and launches the kernel synchronously.
func (p *Plan) Transform(args *KernelArgs) error {
	if len(args.Res) != p.nDims {
		return ErrUnsupportedDimension
	}
	if err := args.Validate(); err != nil {
		return err
	}
	return p.kernel.Launch(args)
}

// Close releases the kernel and context.
func (p *Plan) Close() error {
	kerr := p.kernel.Close()
	cerr := p.ctx.Close()
	if kerr != nil {
		return kerr
	}
	return cerr
}
