// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package variant

// Proxy stands in for an object whose class has no registered constructor
// at decode time. It keeps the class name, version and raw parameters so
// the object can be re-encoded unchanged or coerced into a concrete class
// later.
type Proxy struct {
	className string
	version   int
	params    Variant
}

// NewProxy returns a proxy for className with empty Dictionary params.
func NewProxy(className string) *Proxy {
	return &Proxy{className: className, params: NewDictionary()}
}

func (p *Proxy) Name() string { return p.className }
func (p *Proxy) Version() int { return p.version }

// Params returns the stored parameters.
func (p *Proxy) Params() Variant { return p.params }

func (p *Proxy) Deflate() Variant { return p.params.Clone() }

func (p *Proxy) Inflate(params Variant, version int) error {
	p.params = params.Clone()
	p.version = version
	return nil
}

func (p *Proxy) Clone() Object {
	return &Proxy{className: p.className, version: p.version, params: p.params.Clone()}
}
