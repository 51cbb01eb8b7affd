// Package geo recognizes place-name mentions in product text. It plays the
// role of a lightweight gazetteer lookup: given free text, it reports which
// known cities, provinces, and countries are mentioned, grouped by country
// code, in order of first appearance.
package geo

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Entity kind constants.
const (
	KindCity     = "city"
	KindProvince = "province"
	KindCountry  = "country"
)

// CountryCodeChina is the ISO code used for all mainland-China entries.
const CountryCodeChina = "cn"

type placeInfo struct {
	code    string // ISO 3166-1 alpha-2, lowercase
	country string // display name
	kind    string
	// province is the province a Chinese city belongs to; for province
	// entries it names the province itself.
	province string
}

// gazetteer maps normalized place names to their metadata. Chinese entries
// cover the provinces and manufacturing hubs that show up in supplier
// listings; the rest is a curated set of countries and sourcing cities.
var gazetteer = map[string]placeInfo{
	// Chinese provinces and municipalities.
	"guangdong": {code: "cn", country: "China", kind: KindProvince, province: "guangdong"},
	"zhejiang":  {code: "cn", country: "China", kind: KindProvince, province: "zhejiang"},
	"jiangsu":   {code: "cn", country: "China", kind: KindProvince, province: "jiangsu"},
	"shandong":  {code: "cn", country: "China", kind: KindProvince, province: "shandong"},
	"fujian":    {code: "cn", country: "China", kind: KindProvince, province: "fujian"},
	"shanghai":  {code: "cn", country: "China", kind: KindProvince, province: "shanghai"},
	"beijing":   {code: "cn", country: "China", kind: KindProvince, province: "beijing"},
	"tianjin":   {code: "cn", country: "China", kind: KindProvince, province: "tianjin"},
	"chongqing": {code: "cn", country: "China", kind: KindProvince, province: "chongqing"},
	"sichuan":   {code: "cn", country: "China", kind: KindProvince, province: "sichuan"},

	// Chinese manufacturing cities.
	"shenzhen":  {code: "cn", country: "China", kind: KindCity, province: "guangdong"},
	"guangzhou": {code: "cn", country: "China", kind: KindCity, province: "guangdong"},
	"dongguan":  {code: "cn", country: "China", kind: KindCity, province: "guangdong"},
	"foshan":    {code: "cn", country: "China", kind: KindCity, province: "guangdong"},
	"zhongshan": {code: "cn", country: "China", kind: KindCity, province: "guangdong"},
	"yiwu":      {code: "cn", country: "China", kind: KindCity, province: "zhejiang"},
	"hangzhou":  {code: "cn", country: "China", kind: KindCity, province: "zhejiang"},
	"ningbo":    {code: "cn", country: "China", kind: KindCity, province: "zhejiang"},
	"wenzhou":   {code: "cn", country: "China", kind: KindCity, province: "zhejiang"},
	"suzhou":    {code: "cn", country: "China", kind: KindCity, province: "jiangsu"},
	"nanjing":   {code: "cn", country: "China", kind: KindCity, province: "jiangsu"},
	"qingdao":   {code: "cn", country: "China", kind: KindCity, province: "shandong"},
	"jinan":     {code: "cn", country: "China", kind: KindCity, province: "shandong"},
	"xiamen":    {code: "cn", country: "China", kind: KindCity, province: "fujian"},
	"quanzhou":  {code: "cn", country: "China", kind: KindCity, province: "fujian"},
	"chengdu":   {code: "cn", country: "China", kind: KindCity, province: "sichuan"},

	// Country names.
	"china":          {code: "cn", country: "China", kind: KindCountry},
	"vietnam":        {code: "vn", country: "Vietnam", kind: KindCountry},
	"india":          {code: "in", country: "India", kind: KindCountry},
	"mexico":         {code: "mx", country: "Mexico", kind: KindCountry},
	"portugal":       {code: "pt", country: "Portugal", kind: KindCountry},
	"germany":        {code: "de", country: "Germany", kind: KindCountry},
	"italy":          {code: "it", country: "Italy", kind: KindCountry},
	"spain":          {code: "es", country: "Spain", kind: KindCountry},
	"france":         {code: "fr", country: "France", kind: KindCountry},
	"japan":          {code: "jp", country: "Japan", kind: KindCountry},
	"south korea":    {code: "kr", country: "South Korea", kind: KindCountry},
	"korea":          {code: "kr", country: "South Korea", kind: KindCountry},
	"taiwan":         {code: "tw", country: "Taiwan", kind: KindCountry},
	"thailand":       {code: "th", country: "Thailand", kind: KindCountry},
	"indonesia":      {code: "id", country: "Indonesia", kind: KindCountry},
	"malaysia":       {code: "my", country: "Malaysia", kind: KindCountry},
	"bangladesh":     {code: "bd", country: "Bangladesh", kind: KindCountry},
	"turkey":         {code: "tr", country: "Turkey", kind: KindCountry},
	"poland":         {code: "pl", country: "Poland", kind: KindCountry},
	"brazil":         {code: "br", country: "Brazil", kind: KindCountry},
	"canada":         {code: "ca", country: "Canada", kind: KindCountry},
	"united states":  {code: "us", country: "United States", kind: KindCountry},
	"usa":            {code: "us", country: "United States", kind: KindCountry},
	"united kingdom": {code: "gb", country: "United Kingdom", kind: KindCountry},

	// Non-China sourcing cities.
	"hanoi":        {code: "vn", country: "Vietnam", kind: KindCity},
	"ho chi minh":  {code: "vn", country: "Vietnam", kind: KindCity},
	"mumbai":       {code: "in", country: "India", kind: KindCity},
	"delhi":        {code: "in", country: "India", kind: KindCity},
	"chennai":      {code: "in", country: "India", kind: KindCity},
	"tijuana":      {code: "mx", country: "Mexico", kind: KindCity},
	"monterrey":    {code: "mx", country: "Mexico", kind: KindCity},
	"guadalajara":  {code: "mx", country: "Mexico", kind: KindCity},
	"lisbon":       {code: "pt", country: "Portugal", kind: KindCity},
	"porto":        {code: "pt", country: "Portugal", kind: KindCity},
	"milan":        {code: "it", country: "Italy", kind: KindCity},
	"osaka":        {code: "jp", country: "Japan", kind: KindCity},
	"tokyo":        {code: "jp", country: "Japan", kind: KindCity},
	"seoul":        {code: "kr", country: "South Korea", kind: KindCity},
	"busan":        {code: "kr", country: "South Korea", kind: KindCity},
	"taipei":       {code: "tw", country: "Taiwan", kind: KindCity},
	"bangkok":      {code: "th", country: "Thailand", kind: KindCity},
	"jakarta":      {code: "id", country: "Indonesia", kind: KindCity},
	"kuala lumpur": {code: "my", country: "Malaysia", kind: KindCity},
	"dhaka":        {code: "bd", country: "Bangladesh", kind: KindCity},
	"istanbul":     {code: "tr", country: "Turkey", kind: KindCity},
	"hamburg":      {code: "de", country: "Germany", kind: KindCity},
	"warsaw":       {code: "pl", country: "Poland", kind: KindCity},
	"sao paulo":    {code: "br", country: "Brazil", kind: KindCity},
}

// foldTransformer strips combining marks so accented spellings match their
// plain-ASCII gazetteer entries.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and removes diacritics.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
