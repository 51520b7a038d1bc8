// Package middleware contém os middlewares HTTP da aplicação.
//
// Hoje há apenas o middleware de autenticação, que valida o cookie de
// sessão e carrega o usuário correspondente antes das rotas protegidas.
package middleware
