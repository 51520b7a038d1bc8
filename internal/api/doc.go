// Package api define as rotas e os handlers HTTP.
//
// Os handlers traduzem as submissões dos formulários em chamadas de
// serviço e devolvem as páginas renderizadas com o resultado.
package api
