// Package invocation loads declarative tool invocations from YAML and
// assembles them with an arguments.Builder.
//
//	tool: dotnet
//	arguments:
//	  - template: "pack {value}"
//	    value: src/App.csproj
//	  - template: "/p:{value}"
//	    pairs: {Version: 1.2.3, Authors: "Jane Doe"}
//	    item: "{key}={value}"
//	    separator: ";"
//	  - template: "--api-key {value}"
//	    value: ${NUGET_API_KEY}
//	    secret: true
//	  - flag: "--no-build"
//
// ${NAME} references in values are expanded before quoting, so an unset
// variable drops the argument like any other blank value. Write $${ for a
// literal ${; any other $ is kept as written.
package invocation
