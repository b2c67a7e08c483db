package analyze

import (
	"context"
	"go/constant"
	"go/types"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"mapping-generator/internal/descriptor"
	"mapping-generator/internal/errors"
	"mapping-generator/internal/logger"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and converts their types into descriptors.
type Analyzer struct {
	logger *zap.SugaredLogger
	enums  enumCandidates
	// Dir is the working directory for package loading. Empty means the
	// current directory.
	Dir string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(log *zap.SugaredLogger) *Analyzer {
	return &Analyzer{
		logger: logger.OrNop(log),
		enums:  make(enumCandidates),
	}
}

// LoadPackages loads the specified packages and returns one source per package.
// Patterns are standard Go package patterns (e.g., "./store", "mapping-generator/warehouse").
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) ([]*PackageSource, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Dir:     a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Wrap(errors.Mark(err, errors.ErrSource), "failed to load packages")
	}

	var errs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Wrap(errors.Mark(errors.Join(errs...), errors.ErrSource), "package errors")
	}

	// Enum candidates must be known before any field is converted, since a
	// field in one package may point at an enum of another.
	for _, pkg := range pkgs {
		a.collectEnums(pkg.Types)
	}

	sources := make([]*PackageSource, 0, len(pkgs))

	for _, pkg := range pkgs {
		src := a.processPackage(pkg)
		a.logger.Debugw("loaded package",
			"package", src.Path,
			"types", len(src.types))

		sources = append(sources, src)
	}

	return sources, nil
}

// collectEnums records every constant whose type is a named basic type
// declared in the same package.
func (a *Analyzer) collectEnums(pkg *types.Package) {
	scope := pkg.Scope()

	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || !c.Exported() {
			continue
		}

		named, ok := c.Type().(*types.Named)
		if !ok || named.Obj().Pkg() != pkg {
			continue
		}

		if _, basic := named.Underlying().(*types.Basic); !basic {
			continue
		}

		value := c.Val().ExactString()
		if c.Val().Kind() == constant.String {
			value = constant.StringVal(c.Val())
		}

		a.enums[named.Obj()] = append(a.enums[named.Obj()], enumConstant{
			name:  c.Name(),
			value: value,
			pos:   c.Pos(),
		})
	}

	for tn := range a.enums {
		consts := a.enums[tn]
		sort.SliceStable(consts, func(i, j int) bool { return consts[i].pos < consts[j].pos })
	}
}

// processPackage converts the exported named types of a package.
func (a *Analyzer) processPackage(pkg *packages.Package) *PackageSource {
	src := &PackageSource{
		Path:    pkg.PkgPath,
		PkgName: pkg.Name,
		kinds:   make(map[string]TypeKind),
	}

	scope := pkg.Types.Scope()

	var typeNames []*types.TypeName

	for _, name := range scope.Names() {
		// Only process type names (not variables, constants, functions)
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		typeNames = append(typeNames, typeName)
	}

	// Scope names are sorted alphabetically; descriptors follow declaration order.
	sort.SliceStable(typeNames, func(i, j int) bool { return typeNames[i].Pos() < typeNames[j].Pos() })

	for _, typeName := range typeNames {
		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		kind, d := a.analyzeNamedType(named)
		src.kinds[typeName.Name()] = kind

		if d != nil {
			src.types = append(src.types, d)
		}
	}

	return src
}

// analyzeNamedType classifies a declared named type and builds its descriptor.
// Only structs and enums produce descriptors.
func (a *Analyzer) analyzeNamedType(named *types.Named) (TypeKind, *descriptor.TypeDescriptor) {
	obj := named.Obj()
	pkgPath := obj.Pkg().Path()

	if named.TypeParams().Len() > 0 {
		return TypeKindGeneric, nil
	}

	d := &descriptor.TypeDescriptor{
		Name:      obj.Name(),
		Namespace: pkgPath,
		Module:    pkgPath,
	}

	switch ut := named.Underlying().(type) {
	case *types.Struct:
		a.analyzeStructFields(ut, d)
		return TypeKindStruct, d

	case *types.Basic:
		consts, ok := a.enums[obj]
		if !ok {
			return TypeKindAlias, nil
		}

		d.IsEnum = true
		d.EnumMembers = enumMemberNames(ut, consts)

		return TypeKindEnum, d

	default:
		return TypeKindUnknown, nil
	}
}

// analyzeStructFields extracts exported fields, in declaration order.
func (a *Analyzer) analyzeStructFields(st *types.Struct, d *descriptor.TypeDescriptor) {
	for i := range st.NumFields() {
		field := st.Field(i)

		if !field.Exported() {
			continue
		}

		tags := tagKeys(st.Tag(i))
		if tagIgnored(st.Tag(i)) {
			continue
		}

		d.Properties = append(d.Properties, descriptor.PropertyDescriptor{
			Name: field.Name(),
			Tags: tags,
			Type: a.typeRef(field.Type()),
		})
	}
}

// enumMemberNames uses string values when every value is an identifier
// (type Status string; const StatusPaid Status = "Paid"), constant names otherwise.
func enumMemberNames(basic *types.Basic, consts []enumConstant) []string {
	useValues := basic.Info()&types.IsString != 0

	for _, c := range consts {
		if !isIdent(c.value) {
			useValues = false
			break
		}
	}

	names := make([]string, 0, len(consts))

	for _, c := range consts {
		if useValues {
			names = append(names, c.value)
		} else {
			names = append(names, c.name)
		}
	}

	return names
}
